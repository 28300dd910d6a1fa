package huffman

// makeTestFrequencies returns the classic six-symbol example table: symbols
// 0..5 with counts 5, 9, 12, 13, 16, 45.
func makeTestFrequencies() FrequencyTable {
	ft, err := NewFrequencyTable([]FrequencyEntry{
		{0, 5},
		{1, 9},
		{2, 12},
		{3, 13},
		{4, 16},
		{5, 45},
	})
	if err != nil {
		panic(err)
	}
	return ft
}
