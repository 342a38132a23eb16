package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/downfa11-org/aostore/pkg/config"
	"github.com/downfa11-org/aostore/pkg/metrics"
	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/downfa11-org/aostore/pkg/smgr"
	"github.com/downfa11-org/aostore/pkg/xlog"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  aostore unlink <relpath> [flags]   remove a relation's column storage files")
	fmt.Println("  aostore trace <file>               print WAL trace lines from a record file")
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "unlink":
		runUnlink(os.Args[2], os.Args[3:])
	case "trace":
		runTrace(os.Args[2])
	default:
		usage()
		os.Exit(2)
	}
}

func runUnlink(relpath string, args []string) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if cfg.EnableExporter {
		metrics.StartMetricsServer(cfg.ExporterPort)
	}

	if !filepath.IsAbs(relpath) {
		relpath = filepath.Join(cfg.DataDir, relpath)
	}

	m := smgr.NewManager(cfg, smgr.NewOSStore())
	res, err := m.UnlinkRelation(relpath)
	if err != nil {
		log.Fatalf("❌ Unlink of %s failed: %v", relpath, err)
	}

	fmt.Printf("removed %d segment file(s) for %s\n", res.Removed, relpath)
	if !res.OK() {
		for _, f := range res.Failures {
			fmt.Printf("not removed: %s (%v)\n", segment.FilePath(relpath, f.FileNumber), f.Err)
		}
		os.Exit(1)
	}
}

func runTrace(path string) {
	records, err := xlog.ReadTraceFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read trace file %s: %v", path, err)
	}

	for _, r := range records {
		fmt.Println(xlog.Describe(r))
	}
}
