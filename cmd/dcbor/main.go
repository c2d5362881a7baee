package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/synadia-labs/dcbor-go/dcbor"
)

// CLI defines the dcbor command-line interface.
//
// We deliberately keep it minimal:
//   - diag: hex-encoded dCBOR in, diagnostic notation out
//   - encode: JSON in, hex-encoded dCBOR out
//   - validate: hex-encoded input, exit status reports conformance
//
// Each subcommand takes its input as an argument, or from stdin when
// the argument is "-" or absent.
type CLI struct {
	Diag     DiagCmd     `cmd:"" help:"Render hex-encoded dCBOR in diagnostic notation."`
	Encode   EncodeCmd   `cmd:"" help:"Encode a JSON document as hex dCBOR."`
	Validate ValidateCmd `cmd:"" help:"Check that hex-encoded input conforms to the profile."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dcbor"),
		kong.Description("Deterministic CBOR (dCBOR) codec tool."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

// readInput resolves an argument to its content: literal text, or
// stdin when the argument is empty or "-".
func readInput(arg string) (string, error) {
	if arg != "" && arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func decodeHexArg(arg string) ([]byte, error) {
	s, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad hex input: %w", err)
	}
	return b, nil
}

// DiagCmd prints the diagnostic form of one dCBOR item.
type DiagCmd struct {
	Hex string `arg:"" optional:"" help:"Hex-encoded dCBOR item (default: stdin)"`
}

func (c *DiagCmd) Run() error {
	b, err := decodeHexArg(c.Hex)
	if err != nil {
		return err
	}
	v, err := dcbor.Decode(b)
	if err != nil {
		return err
	}
	fmt.Println(dcbor.Diagnostic(v))
	return nil
}

// EncodeCmd converts JSON to dCBOR.
type EncodeCmd struct {
	JSON string `arg:"" optional:"" help:"JSON document (default: stdin)"`
}

func (c *EncodeCmd) Run() error {
	s, err := readInput(c.JSON)
	if err != nil {
		return err
	}
	v, err := dcbor.FromJSON([]byte(s))
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(dcbor.Encode(v)))
	return nil
}

// ValidateCmd checks conformance and reports the failure offset.
type ValidateCmd struct {
	Hex string `arg:"" optional:"" help:"Hex-encoded dCBOR item (default: stdin)"`
}

func (c *ValidateCmd) Run() error {
	b, err := decodeHexArg(c.Hex)
	if err != nil {
		return err
	}
	if err := dcbor.Valid(b); err != nil {
		var de *dcbor.DecodeError
		if errors.As(err, &de) {
			return fmt.Errorf("not conforming: %w", de)
		}
		return err
	}
	fmt.Println("ok")
	return nil
}
