package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), "\"\""},
		{MakeCode(1, 0), "\"0\""},
		{MakeCode(1, 1), "\"1\""},
		{MakeCode(4, 0x3), "\"0011\""},
		{MakeCode(8, 0xa5), "\"10100101\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			actual := row.hc.String()
			if actual != row.expect {
				t.Errorf("expected %s, got %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	hc = hc.Append(1)
	hc = hc.Append(0)
	hc = hc.Append(1)
	if hc != MakeCode(3, 0x5) {
		t.Errorf("expected \"101\", got %s", hc)
	}
	if hc.Bit(0) != 1 || hc.Bit(1) != 0 || hc.Bit(2) != 1 {
		t.Errorf("wrong bits for %s", hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xc)
	if !hc.HasPrefix(MakeCode(2, 0x3)) {
		t.Errorf("expected \"11\" to prefix %s", hc)
	}
	if !hc.HasPrefix(hc) {
		t.Errorf("expected %s to prefix itself", hc)
	}
	if hc.HasPrefix(MakeCode(2, 0x2)) {
		t.Errorf("expected \"10\" not to prefix %s", hc)
	}
	if MakeCode(1, 1).HasPrefix(hc) {
		t.Errorf("expected a longer code not to be a prefix")
	}
}
