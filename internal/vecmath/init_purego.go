//go:build purego

package vecmath

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/Prophetizo/vectorwave/internal/vecmath/arch/generic"
	// Import registry package
	_ "github.com/Prophetizo/vectorwave/internal/vecmath/registry"
)
