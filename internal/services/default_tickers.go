package services

// DefaultTickers is the large-cap universe refreshed by the bulk populate
// endpoint and the scheduled job.
var DefaultTickers = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK.B", "UNH", "JNJ",
	"XOM", "V", "WMT", "JPM", "PG", "MA", "CVX", "HD", "MRK", "ABBV",
	"PEP", "KO", "AVGO", "COST", "MCD", "PFE", "TMO", "CSCO", "ACN", "ABT",
	"LLY", "DHR", "NKE", "NEE", "CRM", "VZ", "ADBE", "TXN", "CMCSA", "DIS",
	"PM", "WFC", "NFLX", "UPS", "BMY", "ORCL", "HON", "INTC", "QCOM", "UNP",
	"LOW", "RTX", "AMGN", "IBM",
}
