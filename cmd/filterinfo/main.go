// Command filterinfo prints photometric properties of built-in synthetic
// bandpass filters: AB zero-point flux, effective wavelength, and the
// Salim18 dust attenuation factor for given dust parameters.
//
// Usage:
//
//	filterinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all built-in filters.
//
// Examples:
//
//	filterinfo box-g
//	filterinfo -z 0.5 box-g gauss-r
//	filterinfo -z 0.5 -av 1.2 -delta -0.2 -all
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/gbeltzmo/dsps/dust"
	"github.com/gbeltzmo/dsps/photometry"
)

const filterSamples = 501

type filterEntry struct {
	name     string
	gaussian bool
	// Boxcar filters span [lo, hi]; gaussians center on lo with width hi.
	lo, hi float64
}

var registry = []filterEntry{
	{"box-u", false, 3050, 3950},
	{"box-g", false, 4000, 5450},
	{"box-r", false, 5550, 6900},
	{"box-i", false, 6950, 8400},
	{"box-z", false, 8500, 9700},
	{"gauss-u", true, 3550, 300},
	{"gauss-g", true, 4750, 500},
	{"gauss-r", true, 6200, 450},
	{"gauss-i", true, 7650, 500},
	{"gauss-z", true, 9100, 450},
}

func main() {
	z := flag.Float64("z", 0, "source redshift")
	av := flag.Float64("av", 1.0, "V-band attenuation Av in magnitudes")
	delta := flag.Float64("delta", 0, "power-law slope offset delta")
	eb := flag.Float64("eb", math.NaN(), "UV bump amplitude Eb (default: from delta)")
	all := flag.Bool("all", false, "show all built-in filters")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints photometric properties of built-in synthetic filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo box-g gauss-r\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -z 0.5 -av 1.2 -delta -0.2 -all\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	bump := *eb
	if math.IsNaN(bump) {
		bump = dust.EbFromDelta(*delta)
	}

	p := dust.Params{Eb: bump, Delta: *delta, Av: *av}

	printReport(entries, *z, p)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func buildFilter(e filterEntry) (*photometry.Filter, error) {
	wave := make([]float64, filterSamples)
	trans := make([]float64, filterSamples)

	if e.gaussian {
		center, sigma := e.lo, e.hi
		start, stop := center-4*sigma, center+4*sigma
		step := (stop - start) / float64(filterSamples-1)
		for i := range wave {
			wave[i] = start + float64(i)*step
			d := (wave[i] - center) / sigma
			trans[i] = math.Exp(-0.5 * d * d)
		}
	} else {
		step := (e.hi - e.lo) / float64(filterSamples-1)
		for i := range wave {
			wave[i] = e.lo + float64(i)*step
			trans[i] = 1
		}
	}

	return photometry.NewFilter(wave, trans)
}

func printReport(entries []filterEntry, z float64, p dust.Params) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tLambda Eff [A]\tRest Lambda Eff [A]\tFlux AB0 [Lsun/Hz]\tAtten. Factor\n")
	fmt.Fprintf(tw, "------\t--------------\t-------------------\t------------------\t-------------\n")

	for _, e := range entries {
		f, err := buildFilter(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: building %s: %v\n", e.name, err)
			os.Exit(1)
		}

		atten := dust.EffectiveAttenuation(f.Wave(), f.Trans(), z, p)

		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.6e\t%.4f\n",
			e.name,
			f.EffectiveWavelength(0),
			f.EffectiveWavelength(z),
			f.FluxAB0(),
			atten,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
