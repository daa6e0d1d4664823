package dataset

// SampleTable returns the deterministic 20-state seed table used when no
// CSV file exists yet. Populations are in lakhs; counts are yearly case
// totals per category.
func SampleTable() Table {
	return Table{
		sampleRecord("Uttar Pradesh", 2500, 3200, 4500, 1200, 15000, 800, 2000),
		sampleRecord("Maharashtra", 1800, 2400, 3200, 1500, 18000, 600, 1140),
		sampleRecord("Delhi", 450, 1200, 2800, 900, 12000, 400, 190),
		sampleRecord("Madhya Pradesh", 2100, 2800, 3500, 800, 13000, 700, 730),
		sampleRecord("Rajasthan", 1500, 2200, 2800, 600, 11000, 500, 685),
		sampleRecord("Kerala", 250, 800, 1200, 300, 8000, 200, 345),
		sampleRecord("Tamil Nadu", 900, 1500, 2200, 700, 14000, 400, 724),
		sampleRecord("Karnataka", 800, 1300, 2000, 800, 13500, 350, 614),
		sampleRecord("Gujarat", 600, 900, 1800, 500, 10000, 300, 605),
		sampleRecord("West Bengal", 1200, 1800, 2500, 600, 12000, 900, 913),
		sampleRecord("Bihar", 2000, 2500, 3800, 700, 9000, 1200, 1040),
		sampleRecord("Odisha", 800, 1200, 1800, 400, 7000, 500, 420),
		sampleRecord("Haryana", 600, 1100, 2200, 500, 9000, 400, 254),
		sampleRecord("Punjab", 400, 700, 1500, 400, 8500, 300, 277),
		sampleRecord("Assam", 500, 900, 1400, 300, 6000, 600, 312),
		sampleRecord("Jharkhand", 700, 950, 1600, 450, 7500, 450, 330),
		sampleRecord("Chhattisgarh", 650, 850, 1500, 400, 7000, 400, 256),
		sampleRecord("Telangana", 550, 750, 1300, 350, 8000, 300, 354),
		sampleRecord("Himachal Pradesh", 150, 300, 500, 150, 3000, 100, 69),
		sampleRecord("Uttarakhand", 200, 350, 600, 200, 3500, 150, 101),
	}
}

func sampleRecord(name string, murder, rape, kidnapping, robbery, theft, riots int, populationLakhs float64) StateRecord {
	return StateRecord{
		Name: name,
		Counts: map[Category]int{
			Murder:     murder,
			Rape:       rape,
			Kidnapping: kidnapping,
			Robbery:    robbery,
			Theft:      theft,
			Riots:      riots,
		},
		PopulationLakhs: populationLakhs,
	}
}
