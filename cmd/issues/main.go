// Command issues is a maintenance helper for the project's local issue list.
// Without flags it prints a summary of the open issues.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/umbra-platform/localization-service/svc/issues"
)

func main() {
	var (
		file             = flag.String("file", "data/git_issues.json", "path to the issues JSON file")
		closeImplemented = flag.Bool("close-implemented", false, "close every open issue that is already implemented")
		complete         = flag.Int("complete", 0, "mark the issue with this id as completed")
		note             = flag.String("note", "", "note to record when completing an issue")
	)
	flag.Parse()

	if err := run(*file, *closeImplemented, *complete, *note); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(file string, closeImplemented bool, complete int, note string) error {
	switch {
	case complete > 0:
		list, err := issues.LoadFile(file)
		if err != nil {
			return err
		}
		updated, err := issues.Complete(list, complete, note)
		if err != nil {
			return err
		}
		if err := issues.SaveFile(file, updated); err != nil {
			return err
		}
		fmt.Printf("Issue #%d completed\n", complete)
		return nil

	case closeImplemented:
		closed, err := issues.CloseAndSaveImplemented(file)
		if err != nil {
			return err
		}
		fmt.Println(issues.Summarize(closed))
		return nil

	default:
		list, err := issues.LoadFile(file)
		if err != nil {
			return err
		}
		fmt.Println(issues.Summarize(list))
		return nil
	}
}
