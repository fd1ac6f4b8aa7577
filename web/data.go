package web

import (
	"togglzoho/converter"
	"togglzoho/output"
)

type convertResponse struct {
	Header        []string       `json:"header"`
	Rows          [][]string     `json:"rows"`
	RowsRead      int            `json:"rowsRead"`
	RowsConverted int            `json:"rowsConverted"`
	RowsSplit     int            `json:"rowsSplit"`
	Warnings      []string       `json:"warnings"`
	Daily         []dailyRowView `json:"daily"`
}

type dailyRowView struct {
	Date            string `json:"date"`
	Entries         int    `json:"entries"`
	BillableTime    string `json:"billableTime"`
	NonBillableTime string `json:"nonBillableTime"`
	TotalTime       string `json:"totalTime"`
}

func buildConvertResponse(result *converter.Result, includeRateColumns bool) convertResponse {
	resp := convertResponse{
		Header:        result.Header,
		Rows:          make([][]string, 0, len(result.Entries)),
		RowsRead:      result.RowsRead,
		RowsConverted: result.RowsConverted,
		RowsSplit:     result.RowsSplit,
		Warnings:      make([]string, 0, len(result.Warnings)),
		Daily:         make([]dailyRowView, 0, 8),
	}

	for _, entry := range result.Entries {
		resp.Rows = append(resp.Rows, entry.Values(includeRateColumns))
	}
	for _, warning := range result.Warnings {
		resp.Warnings = append(resp.Warnings, warning.String())
	}
	for _, summary := range output.BuildDailySummaries(result.Entries) {
		resp.Daily = append(resp.Daily, dailyRowView{
			Date:            summary.Date,
			Entries:         summary.Entries,
			BillableTime:    summary.BillableTime,
			NonBillableTime: summary.NonBillableTime,
			TotalTime:       summary.TotalTime,
		})
	}

	return resp
}
