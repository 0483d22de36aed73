// Command saucedump reads one or more files, decodes any trailing SAUCE
// block, and prints its fields to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	sauce "github.com/notepid/go-sauce"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	raw := flag.Bool("raw", false, "dump raw record and comment bytes instead of decoded fields")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: saucedump [-raw] file [file...]")
	}

	for _, path := range flag.Args() {
		if err := dump(path, *raw); err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("%s: %v", path, err)))
		}
	}
}

func dump(path string, raw bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Println(fileStyle.Render(path))

	if raw {
		record, comments, err := sauce.FileReadRaw(f)
		if err != nil {
			return err
		}
		fmt.Printf("  record:   %d bytes\n", len(record))
		fmt.Printf("  comments: %d bytes\n", len(comments))
		return nil
	}

	block, err := sauce.FileReadSauce(f)
	if err != nil {
		if errors.Is(err, sauce.ErrNoSauce) {
			fmt.Println("  no SAUCE record")
			return nil
		}
		return err
	}

	for _, d := range block.Details() {
		if d.Name == "file_size" {
			if n, ok := d.Value.(uint64); ok {
				fmt.Printf("  %s %s\n", labelStyle.Render(d.Name+":"), humanize.Bytes(n))
				continue
			}
		}
		fmt.Printf("  %s %v\n", labelStyle.Render(d.Name+":"), d.Value)
	}
	for _, c := range block.Comments {
		fmt.Printf("  | %s\n", c)
	}
	return nil
}
