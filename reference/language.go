package reference

// IELTS General Training band scores mapped to CLB levels, one table per
// ability. Bands below the CLB 4 floor map to 0.

var ieltsListening = steps(
	at(8.5, 10),
	at(8.0, 9),
	at(7.5, 8),
	at(6.0, 7),
	at(5.5, 6),
	at(5.0, 5),
	at(4.5, 4),
)

var ieltsReading = steps(
	at(8.0, 10),
	at(7.0, 9),
	at(6.5, 8),
	at(6.0, 7),
	at(5.0, 6),
	at(4.0, 5),
	at(3.5, 4),
)

// writing and speaking share a table
var ieltsProductive = steps(
	at(7.5, 10),
	at(7.0, 9),
	at(6.5, 8),
	at(6.0, 7),
	at(5.5, 6),
	at(5.0, 5),
	at(4.0, 4),
)

func IELTSListeningCLB(band float64) int { return Lookup(ieltsListening, band, 0) }
func IELTSReadingCLB(band float64) int   { return Lookup(ieltsReading, band, 0) }
func IELTSWritingCLB(band float64) int   { return Lookup(ieltsProductive, band, 0) }
func IELTSSpeakingCLB(band float64) int  { return Lookup(ieltsProductive, band, 0) }

// MaxCLB is the highest benchmark any table distinguishes.
const MaxCLB = 12
