package main

import (
	"context"
	"log"
	"os"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/course"
	catalogsvc "github.com/gradmap/gradmap/services/catalog"
)

func main() {
	logger := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	cli := commandLine{
		courseSvc: course.NewService(catalogsvc.NewClient(conf)),
		out:       os.Stdout,
	}
	if err := cli.run(context.Background(), os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
