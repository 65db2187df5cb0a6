package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/engine"
	"payrise-engine/internal/errs"
	"payrise-engine/internal/scrape"
	"payrise-engine/internal/secrets"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search every enabled board and print ranked opportunities",
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("criteria", "c", "", "YAML file with the search criteria")
	searchCmd.Flags().Bool("json", false, "print results as JSON")
	searchCmd.Flags().IntP("limit", "n", 0, "print at most n results (0 prints all)")
	_ = searchCmd.MarkFlagRequired("criteria")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	criteriaPath, _ := cmd.Flags().GetString("criteria")
	asJSON, _ := cmd.Flags().GetBool("json")
	limit, _ := cmd.Flags().GetInt("limit")

	criteria, err := loadCriteria(criteriaPath)
	if err != nil {
		return err
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, st, err := openResolver(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	providers := scrape.BuildProviders(cfg, secrets.ProviderAPIKey, log.Named("scrape"))
	eng, err := engine.New(engine.OptionsFromConfig(cfg), providers, res, log)
	if err != nil {
		return err
	}

	results, perrs, err := eng.FindOpportunities(ctx, criteria)
	if err != nil {
		return err
	}
	for _, pe := range perrs {
		log.Warn("[search] provider failed",
			zap.String("board", pe.Board),
			zap.String("kind", string(pe.Kind)),
			zap.Error(pe.Err))
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), results, perrs)
	}
	return writeTable(cmd.OutOrStdout(), results, perrs)
}

func loadCriteria(path string) (domain.SearchCriteria, error) {
	var c domain.SearchCriteria
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading criteria: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing criteria %s: %w", path, err)
	}
	return c, nil
}

type providerErrorView struct {
	Board  string `json:"board"`
	Kind   string `json:"kind"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
}

type searchOutput struct {
	Results        []domain.ScoredJob  `json:"results"`
	ProviderErrors []providerErrorView `json:"provider_errors"`
}

func writeJSON(w io.Writer, results []domain.ScoredJob, perrs []*errs.ProviderError) error {
	out := searchOutput{
		Results:        results,
		ProviderErrors: make([]providerErrorView, 0, len(perrs)),
	}
	if out.Results == nil {
		out.Results = []domain.ScoredJob{}
	}
	for _, pe := range perrs {
		v := providerErrorView{Board: pe.Board, Kind: string(pe.Kind), Status: pe.Status}
		if pe.Err != nil {
			v.Error = pe.Err.Error()
		}
		out.ProviderErrors = append(out.ProviderErrors, v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, results []domain.ScoredJob, perrs []*errs.ProviderError) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tRAISE\tTITLE\tCOMPANY\tLOCATION\tSALARY\tBOARD")
	for i, r := range results {
		j := r.Opportunity
		fmt.Fprintf(tw, "%d\t%.1f\t%+.0f%%\t%s\t%s\t%s\t%s\t%s\n",
			i+1, j.OverallScore, j.SalaryIncreasePotential*100,
			j.Title, j.Company, location(j), salaryRange(j), j.JobBoard)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "no opportunities matched")
	}
	for _, pe := range perrs {
		fmt.Fprintf(w, "warning: %s unavailable (%s)\n", pe.Board, pe.Kind)
	}
	return nil
}

func location(j domain.JobOpportunity) string {
	switch {
	case j.Location == "" && j.RemoteFriendly:
		return "remote"
	case j.RemoteFriendly:
		return j.Location + " (remote ok)"
	}
	return j.Location
}

func salaryRange(j domain.JobOpportunity) string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin != *j.SalaryMax:
		return fmt.Sprintf("$%.0fk-$%.0fk", *j.SalaryMin/1000, *j.SalaryMax/1000)
	case j.SalaryMedian != nil:
		return fmt.Sprintf("$%.0fk", *j.SalaryMedian/1000)
	}
	return "-"
}
