package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-hamming"
)

var log = logging.MustGetLogger("hamming/cmd")

func setupLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewLogBackend(w, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func parseValue(s string, max uint64) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, fmt.Errorf("value %#x out of range, maximum is %#x", v, max)
	}
	return uint8(v), nil
}

// dump selects the table by the first letter of what, like the E and D
// arguments of the original table dumper.
func dump(w io.Writer, what string) error {
	if what == "" {
		return errors.New("no table given, expected e, d or all")
	}
	switch strings.ToLower(what)[0] {
	case 'e':
		log.Info("dumping encode table")
		return hamming.WriteCodeTable(w)
	case 'd':
		log.Info("dumping decode tables")
		return hamming.WriteDecodeTables(w)
	case 'a':
		return hamming.WriteTables(w)
	default:
		return fmt.Errorf("unknown table %q, expected e, d or all", what)
	}
}

func check() error {
	if err := hamming.CheckMatrices(); err != nil {
		return err
	}
	return hamming.CheckTables()
}

func verify(w io.Writer, config *Config) error {
	report, err := hamming.Verify()
	if config.Quiet {
		_, werr := report.WriteFailures(w)
		return errors.Join(err, werr)
	}
	_, werr := report.WriteTo(w)
	return errors.Join(err, werr)
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hamming", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "configuration file")
	dumpTable := flags.String("dump", "", "dump table (e, d or all) instead of verifying")
	checkOnly := flags.Bool("check", false, "only check matrices and tables for drift")
	encodeValue := flags.String("encode", "", "encode a 4 bit value")
	decodeValue := flags.String("decode", "", "decode a 7 bit value")
	verbose := flags.Bool("v", false, "be verbose")
	showVersion := flags.Bool("version", false, "show version")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, hamming.PackageID)
		return 0
	}

	config, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *verbose {
		config.LogLevel = "debug"
	}
	if err := setupLogging(stderr, config.LogLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// Compatibility with the E and D arguments of the table dumper.
	if *dumpTable == "" && flags.NArg() == 1 {
		*dumpTable = flags.Arg(0)
	}

	switch {
	case *dumpTable != "":
		err = dump(stdout, *dumpTable)

	case *encodeValue != "":
		var data uint8
		if data, err = parseValue(*encodeValue, 0x0f); err == nil {
			var encode hamming.EncodeFunc
			if encode, err = hamming.Encoder(config.Encoder); err == nil {
				log.Debugf("encoding %#x using %s", data, config.Encoder)
				fmt.Fprintf(stdout, "0x%02X\n", encode(data))
			}
		}

	case *decodeValue != "":
		var code uint8
		if code, err = parseValue(*decodeValue, 0x7f); err == nil {
			var decode hamming.DecodeFunc
			if decode, err = hamming.Decoder(config.Decoder); err == nil {
				log.Debugf("decoding %#02x using %s", code, config.Decoder)
				fmt.Fprintf(stdout, "0x%X\n", decode(code))
			}
		}

	case *checkOnly:
		if err = check(); err == nil {
			log.Info("matrices and tables are consistent")
		}

	default:
		if err = check(); err == nil {
			err = verify(stdout, config)
		}
	}

	if err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
