package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/notifications/pkg/validate"
)

// CLI-приложение для проверки выгрузки топика просроченных заказов:
// валидные заказы печатает в stdout, сводку — в stderr.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-orders", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := fs.String("format", "auto", "input format: auto|json|jsonl")
	quiet := fs.Bool("quiet", false, "print only the summary")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()
	orderValidator := validate.NewOrderValidator()
	format := validate.InputFormat(*formatStr)

	path := *inputPath
	// stdin вариант: считаем, что jsonl (дамп топика построчно)
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	out := stdout
	if *quiet {
		out = io.Discard
	}

	summary, err := validate.ValidateFile(ctx, orderValidator, path, format, out)
	if err != nil {
		fmt.Fprintf(stderr, "validation: %v (%s)\n", err, summary)
		return 1
	}
	fmt.Fprintf(stderr, "validation ok (%s)\n", summary)
	return 0
}
