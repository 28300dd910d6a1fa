package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyEntry pairs a Symbol with its number of occurrences.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint32
}

// FrequencyTable lists the Symbols present in some source data together with
// their occurrence counts.  The order of the entries is significant: it is
// the order in which leaves are seeded into the tree builder, and it is the
// order in which entries are written to a container header.
//
// A FrequencyTable is immutable once constructed.
type FrequencyTable struct {
	entries []FrequencyEntry
	total   uint64
}

// CountFrequencies counts the occurrences of each Symbol in data.  The
// returned table lists the Symbols present in ascending order.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	if len(data) == 0 {
		return FrequencyTable{}, ErrEmptyInput
	}

	var counts [NumSymbols]uint64
	for _, ch := range data {
		counts[ch]++
	}

	entries := make([]FrequencyEntry, 0, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		count := counts[symbol]
		if count == 0 {
			continue
		}
		if count > math.MaxUint32 {
			return FrequencyTable{}, fmt.Errorf("%w: symbol %d occurs %d times, max %d", ErrInputTooLarge, symbol, count, uint64(math.MaxUint32))
		}
		entries = append(entries, FrequencyEntry{Symbol(symbol), uint32(count)})
	}

	return FrequencyTable{entries: entries, total: uint64(len(data))}, nil
}

// NewFrequencyTable constructs a FrequencyTable from a list of entries,
// preserving their order.  The list must be non-empty, must not repeat a
// Symbol, and must not contain a zero count.
func NewFrequencyTable(entries []FrequencyEntry) (FrequencyTable, error) {
	if len(entries) == 0 {
		return FrequencyTable{}, fmt.Errorf("%w: no symbols", ErrMalformedHeader)
	}
	if len(entries) > NumSymbols {
		return FrequencyTable{}, fmt.Errorf("%w: %d symbols, max %d", ErrMalformedHeader, len(entries), NumSymbols)
	}

	var seen [NumSymbols]bool
	var total uint64
	for index, entry := range entries {
		if seen[entry.Symbol] {
			return FrequencyTable{}, fmt.Errorf("%w: entry %d repeats symbol %d", ErrMalformedHeader, index, entry.Symbol)
		}
		if entry.Count == 0 {
			return FrequencyTable{}, fmt.Errorf("%w: entry %d has zero count for symbol %d", ErrMalformedHeader, index, entry.Symbol)
		}
		seen[entry.Symbol] = true
		total += uint64(entry.Count)
	}

	copied := make([]FrequencyEntry, len(entries))
	copy(copied, entries)
	return FrequencyTable{entries: copied, total: total}, nil
}

// Len returns the number of distinct Symbols in the table.
func (ft FrequencyTable) Len() int {
	return len(ft.entries)
}

// Entries returns a copy of the table's entries, in table order.
func (ft FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Count returns the number of occurrences of symbol, or 0 if absent.
func (ft FrequencyTable) Count(symbol Symbol) uint32 {
	for _, entry := range ft.entries {
		if entry.Symbol == symbol {
			return entry.Count
		}
	}
	return 0
}

// Total returns the sum of all counts, i.e. the length of the source data.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(ft.entries))
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, entry := range ft.entries {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", entry.Symbol, entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
