package huffman

// FrequencyTable maps every byte value to its occurrence count
type FrequencyTable [256]int

// BuildFrequencyTable counts byte occurrences in data
func BuildFrequencyTable(data []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// Distinct returns the number of byte values that occur at least once
func (f *FrequencyTable) Distinct() int {
	n := 0
	for _, count := range f {
		if count > 0 {
			n++
		}
	}
	return n
}
