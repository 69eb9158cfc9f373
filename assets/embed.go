package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed movies.txt animals.txt countries.txt sports.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// CategoryList returns the embedded word list for one category file,
// uppercased with comments and blank lines stripped.
func CategoryList(category string) ([]string, error) {
	return readLines(category + ".txt")
}
