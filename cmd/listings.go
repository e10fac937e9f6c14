package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/filtering"
	"github.com/edufi/edufi/internal/utils"
)

var scholarshipsCmd = &cobra.Command{
	Use:   "scholarships",
	Short: "Search scholarships",
	Run: func(cmd *cobra.Command, _ []string) {
		listScholarships(setup("scholarships"), cmd)
	},
}

func listScholarships(e *env, cmd *cobra.Command) {
	records, err := e.repo.Scholarships(e.ctx)
	if err != nil {
		e.logger.Fatal("getting scholarships", zap.Error(err))
	}

	criteria := filtering.Criteria{
		Search:       flagValue(cmd, "search"),
		SearchFields: catalog.ScholarshipSearchFields,
		Equals: map[string]string{
			catalog.FieldRegion:   flagValue(cmd, "region"),
			catalog.FieldCategory: flagValue(cmd, "category"),
		},
		Minimum: boundFromFlag(e.logger, cmd, "min-amount", catalog.FieldAmount),
	}

	list(e, cmd, "scholarships", records, criteria, func(s *catalog.Scholarship) []zap.Field {
		return []zap.Field{
			zap.String("id", s.ID),
			zap.String("title", s.Title),
			zap.Int("amount", s.Amount),
			zap.String("region", s.Region),
			zap.String("category", s.Category),
			zap.String("deadline", s.Deadline.Format("2006-01-02")),
			zap.String("description", utils.TruncateForLog(s.Description, e.config.MaxLogLength)),
		}
	})
}

var internshipsCmd = &cobra.Command{
	Use:   "internships",
	Short: "Search internships",
	Run: func(cmd *cobra.Command, _ []string) {
		listInternships(setup("internships"), cmd)
	},
}

func listInternships(e *env, cmd *cobra.Command) {
	excluded, _ := cmd.Flags().GetStringSlice("exclude-company")

	records, err := e.repo.Internships(e.ctx)
	if err != nil {
		e.logger.Fatal("getting internships", zap.Error(err))
	}

	criteria := filtering.Criteria{
		Search:       flagValue(cmd, "search"),
		SearchFields: catalog.InternshipSearchFields,
		Equals: map[string]string{
			catalog.FieldLocation: flagValue(cmd, "location"),
		},
		Exclude: map[string][]string{
			catalog.FieldCompany: excluded,
		},
		Minimum: boundFromFlag(e.logger, cmd, "min-stipend", catalog.FieldStipend),
	}

	list(e, cmd, "internships", records, criteria, func(i *catalog.Internship) []zap.Field {
		return []zap.Field{
			zap.String("id", i.ID),
			zap.String("title", i.Title),
			zap.String("company", i.Company),
			zap.String("location", i.Location),
			zap.Int("stipend", i.Stipend),
			zap.String("duration", i.Duration),
			zap.String("description", utils.TruncateForLog(i.Description, e.config.MaxLogLength)),
		}
	})
}

var collegesCmd = &cobra.Command{
	Use:   "colleges",
	Short: "Search colleges",
	Run: func(cmd *cobra.Command, _ []string) {
		listColleges(setup("colleges"), cmd)
	},
}

func listColleges(e *env, cmd *cobra.Command) {
	records, err := e.repo.Colleges(e.ctx)
	if err != nil {
		e.logger.Fatal("getting colleges", zap.Error(err))
	}

	criteria := filtering.Criteria{
		Search:       flagValue(cmd, "search"),
		SearchFields: catalog.CollegeSearchFields,
		Equals: map[string]string{
			catalog.FieldStream:   flagValue(cmd, "stream"),
			catalog.FieldLocation: flagValue(cmd, "location"),
		},
		Maximum: boundFromFlag(e.logger, cmd, "max-fees", catalog.FieldFees),
	}

	list(e, cmd, "colleges", records, criteria, func(c *catalog.College) []zap.Field {
		return []zap.Field{
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("location", c.Location),
			zap.String("stream", c.Stream),
			zap.Int("fees", c.Fees),
			zap.Int("rank", c.Rank),
			zap.Float64("rating", c.Rating),
		}
	})
}

var coachingCmd = &cobra.Command{
	Use:   "coaching",
	Short: "Search coaching centers",
	Run: func(cmd *cobra.Command, _ []string) {
		listCoachingCenters(setup("coaching"), cmd)
	},
}

func listCoachingCenters(e *env, cmd *cobra.Command) {
	records, err := e.repo.CoachingCenters(e.ctx)
	if err != nil {
		e.logger.Fatal("getting coaching centers", zap.Error(err))
	}

	criteria := filtering.Criteria{
		Search:       flagValue(cmd, "search"),
		SearchFields: catalog.CoachingCenterSearchFields,
		Equals: map[string]string{
			catalog.FieldExam:     flagValue(cmd, "exam"),
			catalog.FieldLocation: flagValue(cmd, "location"),
		},
		Maximum: boundFromFlag(e.logger, cmd, "max-fees", catalog.FieldFees),
	}

	list(e, cmd, "coaching_centers", records, criteria, func(c *catalog.CoachingCenter) []zap.Field {
		return []zap.Field{
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("location", c.Location),
			zap.String("exam", c.Exam),
			zap.Int("fees", c.Fees),
			zap.Float64("rating", c.Rating),
		}
	})
}

func init() {
	scholarshipFlags(scholarshipsCmd)
	internshipFlags(internshipsCmd)
	collegeFlags(collegesCmd)
	coachingFlags(coachingCmd)

	for _, c := range []*cobra.Command{scholarshipsCmd, internshipsCmd, collegesCmd, coachingCmd} {
		rootCmd.AddCommand(c)
	}
}

func listingFlags(c *cobra.Command) {
	c.Flags().StringP("search", "s", "", "case-insensitive text to look for")
	c.Flags().Bool("dump", false, "dump the found records to a temporary json file")
}

func scholarshipFlags(c *cobra.Command) {
	listingFlags(c)
	c.Flags().String("region", "", "exact region, e.g. All India or Maharashtra")
	c.Flags().String("category", "", "exact category, e.g. Engineering, General or STEM")
	c.Flags().String("min-amount", "", "minimum amount")
}

func internshipFlags(c *cobra.Command) {
	listingFlags(c)
	c.Flags().String("location", "", "exact location")
	c.Flags().String("min-stipend", "", "minimum monthly stipend")
	c.Flags().StringSlice("exclude-company", nil, "companies to leave out, can be repeated")
}

func collegeFlags(c *cobra.Command) {
	listingFlags(c)
	c.Flags().String("stream", "", "exact stream, e.g. Engineering")
	c.Flags().String("location", "", "exact location")
	c.Flags().String("max-fees", "", "maximum fees")
}

func coachingFlags(c *cobra.Command) {
	listingFlags(c)
	c.Flags().String("exam", "", "exact exam, e.g. \"JEE Main & Advanced\"")
	c.Flags().String("location", "", "exact location")
	c.Flags().String("max-fees", "", "maximum fees")
}

// list runs the criteria over records and logs every record left.
func list[T filtering.Record](e *env, cmd *cobra.Command, kind string, records []T, criteria filtering.Criteria, describe func(T) []zap.Field) {
	e.logger.Info("getting "+kind, zap.Int("count", len(records)))

	found, err := filtering.Run(e.ctx, e.logger, filtering.Steps[T](criteria), records)
	if err != nil {
		e.logger.Fatal("filtering failed", zap.Error(err))
	}

	if len(found) == 0 {
		e.logger.Info("exiting", zap.String("reason", "no "+kind+" left after filters"))
		return
	}

	for _, record := range found {
		e.logger.Info(kind, describe(record)...)
	}
	e.logger.Info("found "+kind, zap.Int("count", len(found)))

	if flagValue(cmd, "dump") == "true" {
		filename, err := catalog.DumpToTmpFile(kind, found)
		if err != nil {
			e.logger.Fatal("dump results to file", zap.Error(err))
		}
		e.logger.Info("dumping result to file", zap.String("filename", filename))
	}
}

func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// boundFromFlag parses a numeric flag. An invalid value is reported and
// treated as unset.
func boundFromFlag(l *zap.Logger, cmd *cobra.Command, name, field string) *filtering.Bound {
	bound, err := filtering.ParseBound(field, flagValue(cmd, name))
	if err != nil {
		l.Warn("ignoring numeric filter", zap.String("flag", name), zap.Error(err))
		return nil
	}
	return bound
}
