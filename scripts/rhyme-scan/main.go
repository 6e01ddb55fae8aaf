// rhyme-scan analyzes a text file (or stdin) and prints the result as JSON or
// as the report the bot would send.
//
//	rhyme-scan [file]
//
// Analysis settings use the bot's configuration keys, read from the
// environment with the RHYME_HAMMER prefix. RHYME_FORMAT selects the output:
// json (default) or report.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"

	"github.com/kalexmills/rhyme-hammer/src/rhyme"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	rhymehammer.SetDefaults(v)
	v.SetEnvPrefix("RHYME_HAMMER")
	v.AutomaticEnv()

	cfg, err := rhymehammer.AnalysisConfig(v)
	FatalError(err)

	var in io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		FatalError(err)
		defer f.Close()
		in = f
	}
	text, err := ioutil.ReadAll(in)
	FatalError(err)

	result := rhyme.Analyze(string(text), cfg)

	switch format := os.Getenv("RHYME_FORMAT"); format {
	case "", "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		FatalError(enc.Encode(result))
	case "report":
		fmt.Println(rhymehammer.FormatReport(result, math.MaxInt32))
	default:
		FatalError(fmt.Errorf("unknown RHYME_FORMAT %q; expected json or report", format))
	}
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
