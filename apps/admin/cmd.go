package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/gradmap/gradmap/core/course"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	courseSvc *course.Service
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  ping                - check that the course catalog is reachable")
	fmt.Fprintln(cli.out, "  schools             - list the schools known to the catalog")
	fmt.Fprintln(cli.out, "  search -q QUERY     - search the catalog")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	searchCmd := flag.NewFlagSet("search", flag.ContinueOnError)
	searchQuery := searchCmd.String("q", "", "The search query.")

	switch args[1] {
	case "ping":
		return cli.ping(ctx)
	case "schools":
		return cli.schools(ctx)
	case "search":
		if err := searchCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *searchQuery == "" {
			searchCmd.Usage()
			return errHelp
		}
		return cli.search(ctx, *searchQuery)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) ping(ctx context.Context) error {
	schools, err := cli.courseSvc.QuerySchools(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "catalog OK (%d schools)\n", len(schools))
	return nil
}

func (cli *commandLine) schools(ctx context.Context) error {
	schools, err := cli.courseSvc.QuerySchools(ctx)
	if err != nil {
		return err
	}
	for _, s := range schools {
		fmt.Fprintf(cli.out, "%-8s %s\n", s.Code, s.Name)
	}
	return nil
}

func (cli *commandLine) search(ctx context.Context, query string) error {
	courses, err := cli.courseSvc.Search(ctx, course.QueryFilter{Search: query})
	if err != nil {
		return err
	}
	for _, c := range courses {
		fmt.Fprintf(cli.out, "%-12s %s (%d cr)\n", c.Code, c.Title, c.Credits)
	}
	fmt.Fprintf(cli.out, "%d courses found\n", len(courses))
	return nil
}
