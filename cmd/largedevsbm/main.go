package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/largedevsbm/orchestrator"
)

func main() {
	flag.Set("logtostderr", "true")
	flag.Set("v", "1")

	fset := flag.NewFlagSet("largedevsbm", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	flag.Parse()

	args := flag.Args()

	if len(args) == 0 {
		runInteractive()
		klog.Flush()
		return
	}

	mode, err := strconv.Atoi(args[0])
	if err != nil || mode != 1 {
		klog.Errorf("unrecognized mode selector %q", args[0])
		klog.Flush()
		os.Exit(1)
	}

	runBatch(args[1:])
	klog.Flush()
}

func runInteractive() {
	cfg, err := orchestrator.ReadInteractive(os.Stdin)
	if err != nil {
		klog.Errorf("reading interactive parameters: %v", err)
		os.Exit(1)
	}

	o, err := orchestrator.New(cfg)
	if err != nil {
		klog.Errorf("constructing orchestrator: %v", err)
		os.Exit(1)
	}

	klog.Infof("starting run: n=%d graph=%d action=%d dir=%s", cfg.N, cfg.Graph, cfg.Action, cfg.Dir)

	if err := o.Run(); err != nil {
		klog.Errorf("run failed: %v", err)
		os.Exit(1)
	}
}

func runBatch(args []string) {
	lc, err := orchestrator.RunBatch(args)
	if err != nil {
		klog.Errorf("batch run failed: %v", err)
		os.Exit(1)
	}
	fmt.Println(lc)
}
