package wavelet

// Filter taps below are literature-standard values for each named wavelet.
// The orthogonal entries were verified against the normalization
// (sum = sqrt(2)), unit-energy (sum of squares = 1), shift-orthogonality,
// and QMF relations before registration, the biorthogonal pair against
// normalization and the dual relation, and all were cross-checked with a
// full forward/inverse round trip.

func init() {
	newOrthogonal("haar", "haar", 1, []float64{
		0.7071067811865476,
		0.7071067811865476,
	})

	newOrthogonal("db2", "db", 2, []float64{
		-0.12940952255092145,
		0.22414386804185735,
		0.836516303737469,
		0.48296291314469025,
	})

	newOrthogonal("db3", "db", 3, []float64{
		0.035226291882100656,
		-0.08544127388202666,
		-0.13501102001025458,
		0.4598775021193313,
		0.8068915093133388,
		0.3326705529509569,
	})

	newOrthogonal("db4", "db", 4, []float64{
		-0.010597401785069032,
		0.0328830116668852,
		0.030841381835560764,
		-0.18703481171909309,
		-0.02798376941698385,
		0.6308807679295904,
		0.7148465705529157,
		0.2303778133088965,
	})

	newOrthogonal("db5", "db", 5, []float64{
		0.003335725285001549,
		-0.012580751999015526,
		-0.006241490213011705,
		0.07757149384006515,
		-0.03224486958502952,
		-0.24229488706619015,
		0.13842814590110342,
		0.7243085284385744,
		0.6038292697974729,
		0.160102397974125,
	})

	newOrthogonal("db6", "db", 6, []float64{
		-0.00107730108499558,
		0.004777257511010651,
		0.0005538422009938016,
		-0.03158203931748602,
		0.02752286553001629,
		0.09750160558707936,
		-0.12976686756709563,
		-0.22626469396543983,
		0.3152503517092432,
		0.7511339080215775,
		0.4946238903983854,
		0.11154074335008017,
	})

	newOrthogonal("sym4", "sym", 4, []float64{
		-0.07576571478927333,
		-0.02963552764599851,
		0.49761866763201545,
		0.8037387518059161,
		0.29785779560527736,
		-0.09921954357684722,
		-0.012603967262037833,
		0.0322231006040427,
	})

	newOrthogonal("coif1", "coif", 2, []float64{
		-0.015655728135465965,
		-0.07273261951252645,
		0.3848648468648578,
		0.8525720202122554,
		0.3378976624574818,
		-0.07273261951252645,
	})

	// bior2.2: CDF 5/3 (Le Gall), reconstruction low-pass has 2 vanishing
	// moments, decomposition low-pass has 2. Symmetric, linear phase.
	sqrt2 := 1.4142135623730951
	h0 := []float64{
		-sqrt2 / 8, 2 * sqrt2 / 8, 6 * sqrt2 / 8, 2 * sqrt2 / 8, -sqrt2 / 8,
	}
	h1 := []float64{
		0, sqrt2 / 4, 2 * sqrt2 / 4, sqrt2 / 4, 0,
	}
	newBiorthogonal("bior2.2", 2, 2, h0, h1)
}
