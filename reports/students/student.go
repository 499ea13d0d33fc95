// student.go reads the student database snapshot and derives the report
// fields for each student.

package students

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mark-caprio/dgstools/tabular"
)

// databaseFields are the declared columns of the student database export.
// The export has a header row.
var databaseFields = []string{
	"last",
	"first",
	"nickname",
	"gender",
	"advisor_composite",
	"committee1",
	"committee2",
	"committee3",
	"chair",
	"area",
	"theory_expt",
	"year",
	"program",
	"gre_phys",
	"candidacy_invited",
	"candidacy_invitation_date",
	"candidacy_written_date",
	"candidacy_oral_date",
	"defense_date",
	"funding_fall",
	"funding_spring",
	"ndid",
	"netid",
	"meeting_date_prior_year_4",
	"meeting_date_prior_year_3",
	"meeting_date_prior_year_2",
	"meeting_date_prior_year",
	"meeting_date",
	"experimental_proficiency",
}

// Candidacy status ladder, most advanced milestone first.
const (
	candidacyDefended     = "D" // defended (or defense scheduled)
	candidacyComplete     = "C" // candidacy complete (or oral scheduled)
	candidacyWritten      = "W" // written candidacy exam complete
	candidacyInvited      = "I" // invited to take candidacy exam
	candidacyPrecandidacy = " "
)

const (
	shortAdvisorWidth = 11
	shortStudentWidth = 23
)

// Student is one row of the student database, with derived report fields.
type Student struct {
	Last       string
	First      string
	Nickname   string
	Gender     string
	Area       string
	TheoryExpt string
	Year       float64
	YearRaw    string
	Program    string
	GREPhys    string

	CandidacyInvited        string
	CandidacyInvitationDate string
	CandidacyWrittenDate    string
	CandidacyOralDate       string
	DefenseDate             string

	FundingFall   string
	FundingSpring string

	NDID  string
	NetID string

	MeetingPrior4 string
	MeetingPrior3 string
	MeetingPrior2 string
	MeetingPrior  string
	Meeting       string

	ExperimentalProficiency string

	// Derived fields.
	Key                   string // "last:first"
	Advisor               string // regularized; empty if none
	Coadvisor             string // regularized; empty if none
	Chair                 string // raw database value (compared after regularization)
	ShortAdvisorComposite string // "Advisor/Coadvisor" truncated for brief output
	ShortStudent          string // "Last, First" truncated
	StudentYearString     string // "Last, First (year-or-program)"
	EmailString           string // "First Last <netid@nd.edu>"
	Committee             map[string]bool
	SupplementCommittee   map[string]bool
	CandidacyStatus       string
}

// SortedCommittee returns the committee members in alphabetical order.
func (s *Student) SortedCommittee() []string {
	members := make([]string, 0, len(s.Committee))
	for member := range s.Committee {
		members = append(members, member)
	}
	sort.Strings(members)
	return members
}

// FundingForTerm returns the funding entry for a term code, "a" for spring
// or "b" for fall.
func (s *Student) FundingForTerm(term string) (string, bool) {
	switch term {
	case "a":
		return s.FundingSpring, true
	case "b":
		return s.FundingFall, true
	}
	return "", false
}

// ReadDatabase reads the student database snapshot and derives the report
// fields. Inconsistent candidacy milestones and unparseable years are
// reported as warnings, not errors, so a draft database still yields reports.
func ReadDatabase(path string, log *zap.Logger) ([]*Student, error) {
	records, err := tabular.ReadRecords(path, databaseFields, tabular.ReadOptions{
		SkipHeader: true,
	})
	if err != nil {
		return nil, err
	}

	var database []*Student
	for _, rec := range records {
		database = append(database, newStudent(rec, log))
	}
	return database, nil
}

// newStudent builds a student entry from its database record.
func newStudent(rec tabular.Record, log *zap.Logger) *Student {
	s := &Student{
		Last:       rec["last"],
		First:      rec["first"],
		Nickname:   rec["nickname"],
		Gender:     rec["gender"],
		Area:       rec["area"],
		TheoryExpt: rec["theory_expt"],
		YearRaw:    rec["year"],
		Program:    rec["program"],
		GREPhys:    rec["gre_phys"],

		CandidacyInvited:        rec["candidacy_invited"],
		CandidacyInvitationDate: rec["candidacy_invitation_date"],
		CandidacyWrittenDate:    rec["candidacy_written_date"],
		CandidacyOralDate:       rec["candidacy_oral_date"],
		DefenseDate:             rec["defense_date"],

		FundingFall:   rec["funding_fall"],
		FundingSpring: rec["funding_spring"],

		NDID:  rec["ndid"],
		NetID: strings.ToLower(rec["netid"]),

		MeetingPrior4: rec["meeting_date_prior_year_4"],
		MeetingPrior3: rec["meeting_date_prior_year_3"],
		MeetingPrior2: rec["meeting_date_prior_year_2"],
		MeetingPrior:  rec["meeting_date_prior_year"],
		Meeting:       rec["meeting_date"],

		ExperimentalProficiency: rec["experimental_proficiency"],

		Chair: rec["chair"],
		Key:   rec["last"] + ":" + rec["first"],
	}

	year, err := strconv.ParseFloat(s.YearRaw, 64)
	if err != nil {
		log.Warn("invalid year in student database",
			zap.String("student", s.Last+", "+s.First),
			zap.String("year", s.YearRaw),
		)
	}
	s.Year = year

	s.Advisor, s.Coadvisor = splitAdvisors(rec["advisor_composite"])
	s.ShortAdvisorComposite = shortAdvisorComposite(s.Advisor, s.Coadvisor)

	s.ShortStudent = tabular.Truncate(s.Last+", "+s.First, shortStudentWidth)
	if s.Program == "" {
		s.StudentYearString = s.ShortStudent + " (" + s.YearRaw + ")"
	} else {
		// special program shows in place of year
		s.StudentYearString = s.ShortStudent + " (" + s.Program + ")"
	}
	s.EmailString = s.First + " " + s.Last + " <" + s.NetID + "@nd.edu>"

	s.Committee = make(map[string]bool)
	for _, member := range []string{rec["chair"], rec["committee1"], rec["committee2"], rec["committee3"]} {
		if member != "" {
			s.Committee[RegularizeName(member)] = true
		}
	}

	checkCandidacy(s, log)
	s.CandidacyStatus = candidacyStatus(s)

	return s
}

// splitAdvisors separates an advisor entry into advisor and coadvisor.
// Coadvisors are separated by a slash, or by a spaced "and" in legacy
// entries. The legacy code "DGS" denotes a student with no research advisor.
func splitAdvisors(composite string) (advisor, coadvisor string) {
	composite = strings.TrimSpace(composite)

	var list []string
	slashParts := splitAndTrim(composite, "/")
	// require spaces around "and", else this would split on "Randal"
	andParts := splitAndTrim(composite, " and ")
	switch {
	case len(slashParts) == 2:
		list = slashParts
	case len(andParts) == 2:
		list = andParts
	case composite != "" && composite != "DGS":
		list = []string{composite}
	}

	if len(list) >= 1 {
		advisor = RegularizeName(list[0])
	}
	if len(list) == 2 {
		coadvisor = RegularizeName(list[1])
	}
	return advisor, coadvisor
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// shortAdvisorComposite abbreviates the advisor pair to last names for brief
// output, e.g. "Caprio" or "Howk/Surman".
func shortAdvisorComposite(advisor, coadvisor string) string {
	short := tabular.Truncate(lastName(advisor), shortAdvisorWidth)
	shortCo := tabular.Truncate(lastName(coadvisor), shortAdvisorWidth)
	if shortCo != "" {
		return short + "/" + shortCo
	}
	return short
}

func lastName(regularized string) string {
	name, _, _ := strings.Cut(regularized, ",")
	return name
}

// checkCandidacy warns on inconsistent candidacy milestones.
func checkCandidacy(s *Student, log *zap.Logger) {
	student := s.Last + ", " + s.First
	if s.CandidacyInvited != "No" && s.CandidacyInvited != "Yes" {
		log.Warn("invalid candidacy invitation value",
			zap.String("student", student),
			zap.String("candidacy_invited", s.CandidacyInvited),
		)
	}
	if s.CandidacyInvited == "Yes" && s.CandidacyInvitationDate == "" {
		log.Warn("missing candidacy invitation date", zap.String("student", student))
	}
	if s.CandidacyInvited == "No" &&
		(s.CandidacyInvitationDate != "" || s.CandidacyWrittenDate != "" || s.CandidacyOralDate != "") {
		log.Warn("inconsistent candidacy status",
			zap.String("student", student),
			zap.String("invitation_date", s.CandidacyInvitationDate),
			zap.String("written_date", s.CandidacyWrittenDate),
			zap.String("oral_date", s.CandidacyOralDate),
		)
	}
}

// candidacyStatus derives the progress code from the most advanced recorded
// milestone.
func candidacyStatus(s *Student) string {
	switch {
	case s.DefenseDate != "":
		return candidacyDefended
	case s.CandidacyOralDate != "":
		return candidacyComplete
	case s.CandidacyWrittenDate != "":
		return candidacyWritten
	case s.CandidacyInvitationDate != "":
		return candidacyInvited
	}
	return candidacyPrecandidacy
}

// areaDescription spells out the research area codes, qualified by theory or
// experiment. Astrophysics experimentalists are observers.
func areaDescription(area, theoryExpt string) string {
	areaNames := map[string]string{
		"As":  "Astrophysics",
		"BP":  "Biophysics",
		"CM":  "Condensed matter",
		"HE":  "High energy",
		"NS":  "Network science",
		"NUC": "Nuclear",
	}
	name, ok := areaNames[area]
	switch {
	case area == "":
		name = "Unaffiliated"
	case !ok:
		name = area
	}

	qualifier := ""
	switch {
	case area == "As" && theoryExpt == "Experimental":
		qualifier = "observation"
	case theoryExpt == "Experimental":
		qualifier = "experiment"
	case theoryExpt == "Theory":
		qualifier = "theory"
	}
	return name + " " + qualifier
}
