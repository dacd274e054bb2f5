package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	pb "github.com/dmitrijs2005/skillboard/internal/proto"
)

func skillSummary(skills []*pb.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func renderList(w io.Writer, profiles []*pb.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tLOCATION\tSKILLS")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Id, p.Name, p.Title, p.Location, skillSummary(p.Skills))
	}
	tw.Flush()
}

func renderProfile(w io.Writer, p *pb.Profile) {
	fmt.Fprintf(w, "%s (#%s)\n", p.Name, p.Id)
	if p.Title != "" {
		fmt.Fprintf(w, "  %s\n", p.Title)
	}
	if p.Location != "" {
		fmt.Fprintf(w, "  Location: %s\n", p.Location)
	}
	if p.Bio != "" {
		fmt.Fprintln(w)
		for _, line := range strings.Split(p.Bio, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(p.Skills) > 0 {
		fmt.Fprintln(w, "\n  Skills:")
		for _, s := range p.Skills {
			fmt.Fprintf(w, "    %-20s %s\n", s.Name, levelBar(s.Level))
		}
	}

	links := []struct{ label, url string }{
		{"GitHub", p.Github},
		{"LinkedIn", p.Linkedin},
		{"Website", p.Website},
		{"Avatar", p.AvatarUrl},
	}
	printedHeader := false
	for _, l := range links {
		if l.url == "" {
			continue
		}
		if !printedHeader {
			fmt.Fprintln(w)
			printedHeader = true
		}
		fmt.Fprintf(w, "  %-9s %s\n", l.label+":", l.url)
	}
}

// levelBar draws a 1..5 level as filled and empty dots. Out of range values
// are clamped.
func levelBar(level int32) string {
	n := int(level)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("●", n) + strings.Repeat("○", 5-n)
}
