package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/chamada/core"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  report -roster FILE -marks FILE [-from YYYY-MM-DD] [-to YYYY-MM-DD] - print the attendance report of a class")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportCmd.SetOutput(cli.out)
	reportRoster := reportCmd.String("roster", "", "CSV file of students: id,name,registration")
	reportMarks := reportCmd.String("marks", "", "CSV file of attendance marks: date,student_id,status")
	reportFrom := reportCmd.String("from", "", "First day of the report. Defaults to the first marked day.")
	reportTo := reportCmd.String("to", "", "Last day of the report. Defaults to the last marked day.")

	switch args[1] {
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if *reportRoster == "" || *reportMarks == "" {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(*reportRoster, *reportMarks, *reportFrom, *reportTo)
	default:
		cli.printUsage()
		return errHelp
	}
}
