package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"calc-suite/domain"
)

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

func months(n int) string {
	return fmt.Sprintf("%s months (%.1f years)", humanize.Comma(int64(n)), float64(n)/12)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// summarize renders the headline figures of a result for terminal output.
func summarize(result any) []string {
	switch r := result.(type) {
	case domain.MortgageResult:
		lines := []string{
			"Loan amount:        " + money(r.LoanAmount),
			"Principal+interest: " + money(r.MonthlyPrincipalInterest),
			"Total monthly:      " + money(r.TotalMonthlyPayment),
			"Total interest:     " + money(r.TotalInterest),
			"Payoff:             " + months(r.PayoffMonths),
		}
		if r.PMIRequired {
			lines = append(lines, fmt.Sprintf("PMI:                %s/month for %s", money(r.MonthlyPMI), months(r.PMIMonths)))
		}
		if r.ExtraPayment != nil {
			lines = append(lines, fmt.Sprintf("Extra payment saves %s and %s", money(r.ExtraPayment.InterestSaved), months(r.ExtraPayment.MonthsSaved)))
		}
		return lines
	case domain.AntlerResult:
		return []string{
			fmt.Sprintf("Gross score:  %g", r.GrossScore),
			fmt.Sprintf("Net score:    %g", r.NetScore),
			fmt.Sprintf("All-time min: %g (qualifies: %s)", r.AllTimeMinimum, yesNo(r.QualifiesAllTime)),
			fmt.Sprintf("Awards min:   %g (qualifies: %s)", r.AwardsMinimum, yesNo(r.QualifiesAwards)),
		}
	case domain.StockOptionResult:
		return []string{
			fmt.Sprintf("Vested options: %s of %s", humanize.Comma(int64(r.VestedOptions)), humanize.Comma(int64(r.VestedOptions+r.UnvestedOptions))),
			"Exercise cost:  " + money(r.ExerciseCost),
			"Exit value:     " + money(r.ExitValue),
			"Net profit:     " + money(r.NetProfit),
			"Break-even:     " + money(r.BreakEvenPrice),
		}
	case domain.CRSResult:
		return []string{
			fmt.Sprintf("Core:           %d", r.Core.Total),
			fmt.Sprintf("Spouse:         %d", r.Spouse.Total),
			fmt.Sprintf("Transferability: %d", r.SkillTransferability.Total),
			fmt.Sprintf("Additional:     %d", r.Additional.Total),
			fmt.Sprintf("CRS total:      %d", r.Total),
		}
	case domain.FSWPResult:
		return []string{
			fmt.Sprintf("FSWP points: %d / pass mark %d", r.Total, r.PassMark),
			"Eligible:    " + yesNo(r.Eligible),
		}
	case domain.HELOCResult:
		lines := []string{
			"Draw payment:         " + money(r.DrawPayment),
			"Repayment payment:    " + money(r.RepaymentPayment),
			"Traditional interest: " + money(r.TraditionalInterest),
		}
		if r.Velocity.Viable {
			lines = append(lines,
				"Velocity payoff:      "+months(r.Velocity.Months),
				"Interest saved:       "+money(r.InterestSaved),
			)
		} else {
			lines = append(lines, "Velocity banking is not viable with this cash flow")
			if r.Velocity.MonthlyShortfall > 0 {
				lines = append(lines, "Monthly shortfall:    "+money(r.Velocity.MonthlyShortfall))
			}
		}
		return lines
	case domain.SonnetResult:
		lines := []string{r.Title, ""}
		for _, l := range r.Lines {
			lines = append(lines, l.Text)
		}
		return append(lines, "", "Scheme: "+r.Scheme)
	case domain.SonnetAnalysis:
		return []string{
			fmt.Sprintf("Lines:      %d", r.LineCount),
			"Scheme:     " + r.Scheme,
			fmt.Sprintf("Pentameter: %d", r.PentameterLines),
			"Shakespearean: " + yesNo(r.Shakespearean),
		}
	case domain.SupplementResult:
		lines := []string{"Supplement Facts: " + r.ProductName}
		for _, row := range r.Rows {
			dv := row.Marker
			if row.HasDailyValue {
				dv = fmt.Sprintf("%g%%", row.DailyValuePercent)
			}
			lines = append(lines, fmt.Sprintf("  %-24s %s %s  %s", row.Name, humanize.Ftoa(row.Amount), row.Unit, dv))
		}
		if r.Footnote != "" {
			lines = append(lines, r.Footnote)
		}
		return lines
	}
	return []string{fmt.Sprintf("%+v", result)}
}
