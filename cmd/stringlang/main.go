// Command stringlang counts the characters of a text per Unicode block.
// Usage: stringlang [-profile P] [-blocks a,b] [-output text|json] [-utf16le FILE] [-addr HOST:PORT] [TEXT...]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"stringlang/internal/config"
	grpcclient "stringlang/internal/infra/grpc"
	analysisUC "stringlang/internal/usecase/analysis"
	"stringlang/pkg/unicodeblock"
)

const usage = `Usage: stringlang [flags] [TEXT...]

Counts TEXT, or stdin when no TEXT is given, per Unicode block and prints the
non-zero counts in catalog order. Several TEXT arguments are joined with a space.

Examples:
  stringlang "Hello, 世界"
  echo "カタカナ" | stringlang -output json
  stringlang -profile japanese "ひらがな"
  stringlang -blocks basicLatin,emoticons "hi 😀"
  stringlang -utf16le dump.bin -surrogates keep
  stringlang -list

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the parsed flags.
type options struct {
	profile    string
	blocks     string
	output     string
	utf16le    string
	surrogates string
	profiles   string
	addr       string
	list       bool
	timeout    time.Duration
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stringlang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var o options
	fs.StringVar(&o.profile, "profile", "", "count only the blocks of the named profile")
	fs.StringVar(&o.blocks, "blocks", "", "comma-separated block names to count")
	fs.StringVar(&o.output, "output", "text", "output format: text or json")
	fs.StringVar(&o.utf16le, "utf16le", "", "read UTF-16LE code units from FILE instead of TEXT")
	fs.StringVar(&o.surrogates, "surrogates", "replace", "lone surrogates in UTF-16 input: replace or keep")
	fs.StringVar(&o.profiles, "profiles", os.Getenv("PROFILES_PATH"), "profiles YAML file (default: built-in profiles)")
	fs.StringVar(&o.addr, "addr", "", "analyze on a remote stringlang gRPC server instead of locally")
	fs.BoolVar(&o.list, "list", false, "print the block catalog and exit")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "overall deadline")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if err := o.validate(fs.NArg()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	var err error
	switch {
	case o.list && o.addr != "":
		err = listRemote(ctx, o, stdout)
	case o.list:
		err = listLocal(o, stdout)
	case o.addr != "":
		err = analyzeRemote(ctx, o, fs.Args(), stdin, stdout)
	default:
		err = analyzeLocal(ctx, o, fs.Args(), stdin, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// validate rejects flag combinations before any input is read. nargs is the
// number of TEXT arguments.
func (o options) validate(nargs int) error {
	if o.output != "text" && o.output != "json" {
		return fmt.Errorf("invalid output %q (must be text or json)", o.output)
	}
	if o.profile != "" && o.blocks != "" {
		return errors.New("-profile and -blocks cannot be combined")
	}
	if o.utf16le != "" && nargs > 0 {
		return errors.New("-utf16le cannot be combined with TEXT arguments")
	}
	if o.addr != "" && (o.profile != "" || o.blocks != "" || o.utf16le != "") {
		return errors.New("-addr only supports plain text against the full catalog")
	}
	if _, err := unicodeblock.ParseSurrogatePolicy(o.surrogates); err != nil {
		return err
	}
	return nil
}

// analyzeLocal counts in-process with the same use case the API serves.
func analyzeLocal(ctx context.Context, o options, args []string, stdin io.Reader, stdout io.Writer) error {
	profiles, err := config.LoadProfiles(o.profiles)
	if err != nil {
		return err
	}
	svc := &analysisUC.Service{Profiles: profiles}
	policy, _ := unicodeblock.ParseSurrogatePolicy(o.surrogates)
	opts := analysisUC.Options{
		Profile:    o.profile,
		Blocks:     splitBlocks(o.blocks),
		Surrogates: policy,
	}

	var res *analysisUC.Result
	if o.utf16le != "" {
		// #nosec G304 -- path comes from the command line
		data, err := os.ReadFile(o.utf16le)
		if err != nil {
			return err
		}
		if len(data)%2 != 0 {
			return fmt.Errorf("%s: odd number of bytes in UTF-16LE input", o.utf16le)
		}
		res, err = svc.AnalyzeUTF16(ctx, unicodeblock.DecodeUTF16LE(data), opts)
		if err != nil {
			return err
		}
	} else {
		input, err := readInput(args, stdin)
		if err != nil {
			return err
		}
		res, err = svc.AnalyzeWith(ctx, input, opts)
		if err != nil {
			return err
		}
	}
	return printReport(stdout, o.output, res.Report)
}

// analyzeRemote sends the text to the Analyzer gRPC service at -addr.
func analyzeRemote(ctx context.Context, o options, args []string, stdin io.Reader, stdout io.Writer) error {
	input, err := readInput(args, stdin)
	if err != nil {
		return err
	}
	client, err := dial(o.addr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	report, err := client.Analyze(ctx, input)
	if err != nil {
		return err
	}
	return printReport(stdout, o.output, report)
}

func listLocal(o options, stdout io.Writer) error {
	cat := unicodeblock.Standard()
	if o.profile != "" {
		profiles, err := config.LoadProfiles(o.profiles)
		if err != nil {
			return err
		}
		p, err := profiles.Lookup(o.profile)
		if err != nil {
			return err
		}
		cat = p.Catalog
	}
	return printBlocks(stdout, o.output, cat.Blocks())
}

func listRemote(ctx context.Context, o options, stdout io.Writer) error {
	client, err := dial(o.addr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	blocks, err := client.ListBlocks(ctx)
	if err != nil {
		return err
	}
	return printBlocks(stdout, o.output, blocks)
}

func dial(addr string) (*grpcclient.Client, error) {
	cfg, err := grpcclient.LoadClientConfig(addr)
	if err != nil {
		return nil, err
	}
	return grpcclient.NewClient(cfg)
}

// readInput joins args with a space, or reads all of stdin when there are none.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func splitBlocks(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// printReport writes one "block<TAB>count" line per entry, or the report as a
// JSON object, in report order.
func printReport(w io.Writer, format string, r unicodeblock.Report) error {
	if format == "json" {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	for name, count := range r.All() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", name, count); err != nil {
			return err
		}
	}
	return nil
}

// blockOutput is the JSON form of a block in -list output.
type blockOutput struct {
	Name string `json:"name"`
	Low  string `json:"low"`
	High string `json:"high"`
}

func printBlocks(w io.Writer, format string, blocks []unicodeblock.Block) error {
	if format == "json" {
		out := make([]blockOutput, len(blocks))
		for i, b := range blocks {
			out[i] = blockOutput{Name: b.Name, Low: unicodeblock.FormatCodePoint(b.Low), High: unicodeblock.FormatCodePoint(b.High)}
		}
		enc := json.NewEncoder(w)
		return enc.Encode(out)
	}
	for _, b := range blocks {
		if _, err := fmt.Fprintf(w, "%s\t%s..%s\n", b.Name, unicodeblock.FormatCodePoint(b.Low), unicodeblock.FormatCodePoint(b.High)); err != nil {
			return err
		}
	}
	return nil
}
