package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func openOutputFile(filename string) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !forceFlag {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(filename, flags, 0644)
	if err != nil {
		if os.IsExist(err) && !forceFlag {
			for {
				fmt.Printf("File %v already exists, would you like to overwrite it? [y/N/a]: ", filename)
				r := bufio.NewReader(os.Stdin)
				line, _ := r.ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "a":
					forceFlag = true
					fallthrough
				case "y":
					flags &= ^os.O_EXCL
					return os.OpenFile(filename, flags, 0644)
				case "n", "":
					return nil, err
				}
			}
		}
		return nil, err
	}
	return f, nil
}

// writeOutput writes content to filename, or to stdout when filename
// is "-".
func writeOutput(filename, content string) error {
	if filename == "-" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	f, err := openOutputFile(filename)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readTextArg resolves input for commands accepting either an inline
// --text string or a --from file ("-" reads stdin). With neither set,
// stdin is read.
func readTextArg(text, from string) (string, error) {
	if text != "" {
		return text, nil
	}
	if from != "" {
		if from == "-" {
			return readStdin()
		}
		data, err := os.ReadFile(from)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", from, err)
		}
		return string(data), nil
	}
	return readStdin()
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(data), nil
}
