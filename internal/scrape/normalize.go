package scrape

import (
	"strings"
	"time"

	"payrise-engine/internal/domain"
	"payrise-engine/internal/scrape/types"
	"payrise-engine/internal/scrape/util"
)

// Normalize converts a raw board posting into an opportunity. ok is false
// when the posting has no title or native id. extraBenefits is matched in
// addition to the built-in benefit vocabulary.
func Normalize(board domain.JobBoard, rp types.RawPosting, now time.Time, extraBenefits []string) (domain.JobOpportunity, bool) {
	title := util.CleanText(rp.Title)
	native := strings.TrimSpace(rp.NativeID)
	if title == "" || native == "" {
		return domain.JobOpportunity{}, false
	}

	var desc string
	var bullets []string
	if rp.DescIsHTML {
		desc = util.StripHTML(rp.Description)
		bullets = util.ListItems(rp.Description)
	} else {
		desc = util.CleanLines(rp.Description)
	}

	location := util.NormalizeLocation(rp.Location)
	job := domain.JobOpportunity{
		JobID:           domain.JobID(board, native),
		Title:           title,
		Company:         util.CleanText(rp.Company),
		Location:        location,
		MSA:             util.MSAForLocation(location),
		JobBoard:        board,
		URL:             util.CanonicalURL(rp.URL),
		Description:     desc,
		CompanySize:     strings.ToLower(util.CleanText(rp.CompanySize)),
		CompanyIndustry: util.CleanText(rp.Industry),
	}

	job.SalaryMin, job.SalaryMax, job.SalaryMedian = salaryOf(rp)

	if rp.Remote != nil {
		job.RemoteFriendly = *rp.Remote
	} else {
		job.RemoteFriendly = util.IsRemote(location, title)
	}

	switch {
	case !rp.PostedAt.IsZero():
		job.PostedDate = rp.PostedAt.UTC()
	default:
		if t, ok := util.ParsePostedDate(rp.PostedRaw, now); ok {
			job.PostedDate = t
		}
	}

	job.Benefits = util.ExtractBenefits(desc, extraBenefits)
	job.Requirements = util.ExtractRequirements(desc, bullets)
	job.EquityOffered = util.MentionsEquity(title + "\n" + desc + "\n" + rp.SalaryText)
	job.BonusPotential = util.BonusPotential(desc + "\n" + rp.SalaryText)
	return job, true
}

// salaryOf prefers structured provider values over the free-text salary.
func salaryOf(rp types.RawPosting) (min, max, median *float64) {
	lo, hi := rp.SalaryMin, rp.SalaryMax
	switch {
	case lo != nil && hi != nil:
	case lo != nil:
		hi = lo
	case hi != nil:
		lo = hi
	default:
		return util.SalaryPointers(util.ParseSalary(rp.SalaryText))
	}
	a, b := *lo, *hi
	if a > b {
		a, b = b, a
	}
	return util.SalaryPointers(a, b, a > 0)
}
