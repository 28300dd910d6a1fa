package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffpack"
)

var log = logging.MustGetLogger("huffpack")

const progName = "huffpack"
const usageMessage = `
Usage: huffpack OPTIONS MODE INPUT OUTPUT

Modes:
  compress
	Read INPUT, compress it, and write the container to OUTPUT.
  decompress
	Read the container in INPUT and write the original bytes to OUTPUT.

Options:
  --stats, -s
	Report input size, output size, and compression ratio.
  --debug, -d
	Report the frequency table and the code assigned to every symbol.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage)
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func main() {
	startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging, showStats bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&showStats, "stats", false, "")
	ourFlags.BoolVar(&showStats, "s", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if errors.Is(argErr, flag.ErrHelp) {
		io.WriteString(os.Stdout, usageMessage)
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if ourFlags.NArg() != 3 {
		usageErrorf("expected MODE INPUT OUTPUT, got %d arguments", ourFlags.NArg())
	}
	mode, inPath, outPath := ourFlags.Arg(0), ourFlags.Arg(1), ourFlags.Arg(2)

	var transform func([]byte) ([]byte, error)
	switch mode {
	default:
		usageErrorf("bad mode %q", mode)
	case "compress":
		transform = compress
	case "decompress":
		transform = decompress
	}

	input, err := os.ReadFile(inPath)
	if err != nil {
		exitError(err)
	}

	output, err := transform(input)
	if err != nil {
		exitError(fmt.Errorf("%s %s: %w", mode, inPath, err))
	}

	if err := os.WriteFile(outPath, output, 0o666); err != nil {
		exitError(err)
	}

	if showStats {
		log.Infof("%s: %d bytes -> %d bytes (ratio %.3f)", mode, len(input), len(output), ratio(len(output), len(input)))
	}
}

func compress(input []byte) ([]byte, error) {
	var e huffman.Encoder
	if err := e.Init(input); err != nil {
		return nil, err
	}
	if log.IsEnabledFor(logging.DEBUG) {
		logFrequencies(e.Frequencies())
		logCodes(e.Codes())
	}
	return e.Encode()
}

func decompress(input []byte) ([]byte, error) {
	var d huffman.Decoder
	if err := d.Init(input); err != nil {
		return nil, err
	}
	if log.IsEnabledFor(logging.DEBUG) {
		logFrequencies(d.Frequencies())
		codes := huffman.NewCodeTable(d.Tree())
		logCodes(&codes)
	}
	return d.Decode()
}

func logFrequencies(ft huffman.FrequencyTable) {
	log.Debugf("%d distinct symbols, %d total", ft.Len(), ft.Total())
	for _, entry := range ft.Entries() {
		log.Debugf("symbol %3d: frequency %d", entry.Symbol, entry.Count)
	}
}

func logCodes(ct *huffman.CodeTable) {
	ct.Visit(func(symbol huffman.Symbol, weight uint64, hc huffman.Code) {
		log.Debugf("symbol %3d %s: frequency %d, code %s", symbol, printable(symbol), weight, hc)
	})
}

func printable(symbol huffman.Symbol) string {
	if symbol >= 0x20 && symbol < 0x7f {
		return fmt.Sprintf("%q", rune(symbol))
	}
	return "   "
}

func ratio(compressed, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}
