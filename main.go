package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Steakkk/RustyZip/engine"
)

var Commands = [...]string{"encode", "help"}

func main() {
	application := os.Args[0]
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	encodeCmd := flag.Bool(Commands[0], false, "Encode file")
	helpCmd := flag.Bool(Commands[1], false, "Help")

	if len(os.Args) == 1 {
		fmt.Println("Please provide commands")
		os.Exit(1)
	}
	commandArgs := findIntersection(
		[]string{
			"--encode",
			"--help",
		},
		os.Args[1:],
	)
	flag.CommandLine.Parse(commandArgs)
	if *helpCmd {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
		fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
		fmt.Fprintf(os.Stderr, "Flag:\n")
		flag.PrintDefaults()
		return
	}
	if !*encodeCmd {
		fmt.Println("No command is selected. Encoding by default")
	}

	encodeFS := flag.NewFlagSet(Commands[0], flag.ExitOnError)
	encodeFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --encode [OPTIONS] <file(s)>\n", application)
		fmt.Fprintf(os.Stderr, "Options take the --name=value form\n")
		fmt.Fprintf(os.Stderr, "Flag:\n")
		encodeFS.PrintDefaults()
	}
	coderFlag := encodeFS.String("coder", "huffman", fmt.Sprintf("Which coder(s) to use, choices include: \n\t%s", strings.Join(engine.Coders[:], ", ")))
	deleteAfter := encodeFS.Bool("delete", false, "Delete file after encoding")
	outFileExt := encodeFS.String("outfileext", ".rz", "File extension appended to the result")
	helpEncode := encodeFS.Bool("help", false, "Encode help")
	commandArgs = findIntersection(
		[]string{
			"--coder",
			"--delete",
			"--outfileext",
			"--help",
		},
		os.Args[1:],
	)
	encodeFS.Parse(commandArgs)
	if *helpEncode {
		encodeFS.Usage()
		return
	}

	i := 1
	for ; i < len(os.Args) && strings.HasPrefix(os.Args[i], "-"); i++ {
	}
	if i == len(os.Args) {
		fmt.Println("No file provided for encoding")
		os.Exit(1)
	}
	files := strings.Split(os.Args[i], ",")
	trimSpace(files)
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			fmt.Printf("Could not open the provided file %s\n", f)
			os.Exit(1)
		}
	}
	coders := strings.Split(*coderFlag, ",")
	trimSpace(coders)
	if err := engine.EncodeFiles(coders, files, *outFileExt); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	if *deleteAfter {
		deleteFiles(files)
	}
}

// findIntersection keeps the arguments whose flag name appears in
// commandList, matching both the bare --name and the --name=value forms.
func findIntersection(commandList, argList []string) []string {
	set := make(map[string]struct{}, len(commandList))
	for _, c := range commandList {
		set[c] = struct{}{}
	}
	var out []string
	for _, arg := range argList {
		name, _, _ := strings.Cut(arg, "=")
		if _, ok := set[name]; ok {
			out = append(out, arg)
		}
	}
	return out
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func deleteFiles(files []string) {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
	}
}
