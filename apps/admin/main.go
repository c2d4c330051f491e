package main

import (
	"log"
	"os"

	"github.com/trezcool/chamada/core"
	logsvc "github.com/trezcool/chamada/services/logger"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	rlog := logsvc.NewRollbarLogger(logger, conf)
	rlog.Enable(false)
	defer rlog.Close()

	cli := commandLine{
		conf:   conf,
		logger: rlog,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		rlog.Close()
		os.Exit(1)
	}
}
