package faculty

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gradmap/gradmap/core"
)

var (
	// errors
	ErrNotFound = errors.New("professor not found")
)

const (
	recentWorksLimit  = 10
	coauthorScanLimit = 50
	coauthorKeepLimit = 10
)

type (
	// Directory lists professors; served by the catalog collaborator.
	Directory interface {
		QueryProfessors(ctx context.Context, department string) ([]Professor, error)
		GetProfessorByName(ctx context.Context, name string) (Professor, error)
	}

	// Research fetches publication data; served by OpenAlex.
	Research interface {
		GetAuthor(ctx context.Context, openAlexID string) (Author, error)
		GetAuthorWorks(ctx context.Context, openAlexID string, limit int) ([]Work, error)
	}

	Service struct {
		dir      Directory
		research Research
		logger   core.Logger
	}
)

func NewService(dir Directory, research Research, logger core.Logger) *Service {
	return &Service{dir: dir, research: research, logger: logger}
}

func (svc *Service) Query(ctx context.Context, department string) ([]Professor, error) {
	return svc.dir.QueryProfessors(ctx, core.CleanString(department))
}

// Profile returns directory info enriched with OpenAlex data. Research
// failures degrade to a directory-only profile rather than failing the call.
func (svc *Service) Profile(ctx context.Context, name string) (Profile, error) {
	prof, err := svc.dir.GetProfessorByName(ctx, core.CleanString(name))
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{Professor: prof}
	if prof.OpenAlexID == "" {
		return profile, nil
	}

	author, err := svc.research.GetAuthor(ctx, prof.OpenAlexID)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("faculty: fetching author %s: %v", prof.OpenAlexID, err), err)
		return profile, nil
	}
	profile.Author = &author

	works, err := svc.research.GetAuthorWorks(ctx, prof.OpenAlexID, coauthorScanLimit)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("faculty: fetching works of %s: %v", prof.OpenAlexID, err), err)
		return profile, nil
	}
	if len(works) > recentWorksLimit {
		profile.RecentWorks = works[:recentWorksLimit]
	} else {
		profile.RecentWorks = works
	}
	profile.Coauthors = frequentCoauthors(works, author.ID)
	return profile, nil
}

// frequentCoauthors counts collaborators across works, excluding the author.
func frequentCoauthors(works []Work, selfID string) []Coauthor {
	counts := make(map[string]*Coauthor)
	for _, w := range works {
		for _, a := range w.Authors {
			if a.ID == "" || a.ID == selfID {
				continue
			}
			if co, ok := counts[a.ID]; ok {
				co.Works++
			} else {
				counts[a.ID] = &Coauthor{ID: a.ID, Name: a.Name, Works: 1}
			}
		}
	}

	coauthors := make([]Coauthor, 0, len(counts))
	for _, co := range counts {
		coauthors = append(coauthors, *co)
	}
	sort.Slice(coauthors, func(i, j int) bool {
		if coauthors[i].Works != coauthors[j].Works {
			return coauthors[i].Works > coauthors[j].Works
		}
		return coauthors[i].Name < coauthors[j].Name
	})
	if len(coauthors) > coauthorKeepLimit {
		coauthors = coauthors[:coauthorKeepLimit]
	}
	return coauthors
}
