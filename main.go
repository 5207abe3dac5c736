package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/cs-au-dk/ineq/utils"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()
	args := flag.Args()

	if opts.NoColorize() {
		color.NoColor = true
	}

	if opts.Verbose() {
		defer utils.TimeTrack(time.Now(), "Task "+fmt.Sprint(flag.Lookup("task").Value))
	}

	if task.IsBatch() {
		b, err := loadBatch(opts.File())
		if err != nil {
			log.Fatalln(err)
		}
		m := runBatch(os.Stdout, b, configFromOpts())
		m.report(os.Stdout)
		if m.Failed() > 0 {
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ineq [flags] <expression>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	pl, err := newPipeline(os.Stdout, configFromOpts())
	if err != nil {
		log.Fatalln(err)
	}

	if ok, err := pl.secondaryTask(args); ok {
		if err != nil {
			log.Fatalln(color.RedString("%v", err))
		}
		return
	}

	switch {
	case task.IsIntervals():
		err = pl.intervalsTask(args)
	default:
		err = pl.reduceTask(args)
	}
	if err != nil {
		log.Fatalln(color.RedString("%v", err))
	}
}
