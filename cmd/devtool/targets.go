package main

const (
	binDir     = "bin"
	resultsDir = "benchmarks/results"
	coverDir   = "logs"
)

// binaryTarget is one binary produced by `devtool build`
type binaryTarget struct {
	name string
	pkg  string
}

// benchSuite is one group of benchmarks run by `devtool bench`. Patterns are
// plain prefixes: "|" would be rejected by validateArgs.
type benchSuite struct {
	name    string
	pkg     string
	pattern string
}

var binaries = []binaryTarget{
	{name: "gildedrose", pkg: "./cmd/app"},
}

var benchSuites = []benchSuite{
	{name: "engine", pkg: "./benchmarks/engine", pattern: "BenchmarkEngine"},
	{name: "simulate", pkg: "./benchmarks/engine", pattern: "BenchmarkService"},
	{name: "classifier", pkg: "./benchmarks/engine", pattern: "Classif"},
}

// findSuites returns the suites named in names, or every suite when names is empty
func findSuites(names []string) ([]benchSuite, bool) {
	if len(names) == 0 {
		return benchSuites, true
	}

	var found []benchSuite
	for _, name := range names {
		matched := false
		for _, suite := range benchSuites {
			if suite.name == name {
				found = append(found, suite)
				matched = true
			}
		}
		if !matched {
			return nil, false
		}
	}
	return found, true
}
