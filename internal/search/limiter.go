package search

// DeliveredResultLimit caps how many aggregated results are delivered
// to the caller. Fetch breadth stays wider than delivery size on
// purpose; trimming happens only here.
const DeliveredResultLimit = 5

// CapResults returns at most the first DeliveredResultLimit results.
func CapResults(results []Result) []Result {
	if len(results) > DeliveredResultLimit {
		return results[:DeliveredResultLimit]
	}
	return results
}
