// Command yamlj converts between Y (YAML-family) and J (JSON-family)
// text on the command line.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error
	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()
	case "version", "--version", "-v":
		fmt.Println("yamlj (development build)")
	case "to-json":
		err = process(os.Args[2:], directionToJSON)
	case "to-yaml":
		err = process(os.Args[2:], directionToYAML)
	case "minify":
		err = process(os.Args[2:], directionMinify)
	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  yamlj help")
	fmt.Println("  yamlj version")
	fmt.Println("  yamlj to-json [args] <file>")
	fmt.Println("  yamlj to-yaml [args] <file>")
	fmt.Println("  yamlj minify [args] <file>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  to-json    Converts Y source to J text.")
	fmt.Println("  to-yaml    Converts J text to Y source.")
	fmt.Println("  minify     Collapses J text onto a single line.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -o, --output <file>     Write output to file instead of stdout.")
	fmt.Println("  --indent <n>            Spaces per nesting level (default 2).")
	fmt.Println("  --yes-no-bool           Treat yes/no as booleans.")
	fmt.Println("  --allow-duplicate-keys  Do not error on repeated mapping keys.")
}
