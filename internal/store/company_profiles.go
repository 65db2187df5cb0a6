package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"payrise-engine/internal/domain"
)

const profileColumns = `company_id, name, industry, size, diversity_score, growth_score, culture_score,
  benefits_score, leadership_diversity, employee_retention, glassdoor_rating, indeed_rating,
  remote_friendly, headquarters, founded_year, funding_stage, revenue_band, website, sources, fetched_at`

func (d *SQLite) GetProfile(ctx context.Context, companyID string) (domain.CompanyProfile, bool, error) {
	companyID = domain.NormalizeCompanyName(companyID)
	if companyID == "" {
		return domain.CompanyProfile{}, false, nil
	}

	var (
		p         domain.CompanyProfile
		leadDiv   sql.NullFloat64
		retention sql.NullFloat64
		gdRating  sql.NullFloat64
		inRating  sql.NullFloat64
		remote    sql.NullBool
		sources   string
		fetchedAt string
	)
	err := d.Pool.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM company_profiles WHERE company_id = ? LIMIT 1;`,
		companyID,
	).Scan(&p.CompanyID, &p.Name, &p.Industry, &p.Size, &p.DiversityScore, &p.GrowthScore, &p.CultureScore,
		&p.BenefitsScore, &leadDiv, &retention, &gdRating, &inRating,
		&remote, &p.Headquarters, &p.FoundedYear, &p.FundingStage, &p.RevenueBand, &p.Website, &sources, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.CompanyProfile{}, false, nil
	}
	if err != nil {
		return domain.CompanyProfile{}, false, err
	}

	p.LeadershipDiversity = nullFloat(leadDiv)
	p.EmployeeRetention = nullFloat(retention)
	p.GlassdoorRating = nullFloat(gdRating)
	p.IndeedRating = nullFloat(inRating)
	if remote.Valid {
		b := remote.Bool
		p.RemoteFriendly = &b
	}
	_ = json.Unmarshal([]byte(sources), &p.Sources)
	if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		p.FetchedAt = t
	}
	return p, true, nil
}

func (d *SQLite) PutProfile(ctx context.Context, p domain.CompanyProfile) error {
	p.CompanyID = domain.NormalizeCompanyName(p.CompanyID)
	if p.CompanyID == "" {
		return nil
	}
	if p.FetchedAt.IsZero() {
		p.FetchedAt = time.Now()
	}
	sources, _ := json.Marshal(p.Sources)
	if p.Sources == nil {
		sources = []byte("[]")
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO company_profiles(`+profileColumns+`)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(company_id) DO UPDATE SET
  name = excluded.name,
  industry = excluded.industry,
  size = excluded.size,
  diversity_score = excluded.diversity_score,
  growth_score = excluded.growth_score,
  culture_score = excluded.culture_score,
  benefits_score = excluded.benefits_score,
  leadership_diversity = excluded.leadership_diversity,
  employee_retention = excluded.employee_retention,
  glassdoor_rating = excluded.glassdoor_rating,
  indeed_rating = excluded.indeed_rating,
  remote_friendly = excluded.remote_friendly,
  headquarters = excluded.headquarters,
  founded_year = excluded.founded_year,
  funding_stage = excluded.funding_stage,
  revenue_band = excluded.revenue_band,
  website = excluded.website,
  sources = excluded.sources,
  fetched_at = excluded.fetched_at;
`,
		p.CompanyID, p.Name, p.Industry, p.Size, p.DiversityScore, p.GrowthScore, p.CultureScore,
		p.BenefitsScore, nullable(p.LeadershipDiversity), nullable(p.EmployeeRetention), nullable(p.GlassdoorRating), nullable(p.IndeedRating),
		nullable(p.RemoteFriendly), p.Headquarters, p.FoundedYear, p.FundingStage, p.RevenueBand, p.Website,
		string(sources), p.FetchedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (d *SQLite) PruneProfiles(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := d.Pool.ExecContext(ctx,
		`DELETE FROM company_profiles WHERE fetched_at < ?;`,
		olderThan.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
