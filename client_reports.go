package pmclient

import "context"

// GetDashboardStats fetches the admin dashboard aggregates: headline totals,
// per-department and per-status project counts, and upcoming events.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// GetReportsSummary fetches the reports page aggregates, including the
// per-mentor team counts.
func (c *Client) GetReportsSummary(ctx context.Context) (ReportsSummary, error) {
	var summary ReportsSummary
	if err := c.getJSON(ctx, "/reports/summary", &summary); err != nil {
		return ReportsSummary{}, err
	}
	return summary, nil
}
