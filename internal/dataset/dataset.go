// Package dataset loads and validates the state-wise crime table.
//
// The table is read once per run and treated as immutable afterwards; all
// derived statistics are recomputed from it on demand.
package dataset

// Category is one of the fixed crime categories in the table schema.
// The set is closed: a table with missing or extra category columns is
// rejected at load time.
type Category string

// The six crime categories, in schema column order.
const (
	Murder     Category = "Murder"
	Rape       Category = "Rape"
	Kidnapping Category = "Kidnapping"
	Robbery    Category = "Robbery"
	Theft      Category = "Theft"
	Riots      Category = "Riots"
)

// Categories returns the closed category set in schema column order.
func Categories() []Category {
	return []Category{Murder, Rape, Kidnapping, Robbery, Theft, Riots}
}

// StateRecord holds the raw counts and population for a single state.
// PopulationLakhs is expressed in lakhs (1 lakh = 100,000 residents) and
// is validated > 0 at load time so rate computation never divides by zero.
type StateRecord struct {
	Name            string
	Counts          map[Category]int
	PopulationLakhs float64
}

// TotalCrimes returns the integer sum of all category counts.
func (r StateRecord) TotalCrimes() int {
	total := 0
	for _, c := range Categories() {
		total += r.Counts[c]
	}

	return total
}

// Table is an ordered sequence of state records, one per state, in
// source-file order. State names are unique within a table.
type Table []StateRecord

// Names returns the state names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, rec := range t {
		names[i] = rec.Name
	}

	return names
}
