package companydb

// Built-in company list used when no JSON file is configured. Weighted
// toward financial institutions, matching the sales demo's usual targets.
var defaultEntries = []Entry{
	{Name: "JPMorgan Chase", Domain: "jpmorganchase.com", Industry: "Banking", Ticker: "JPM"},
	{Name: "Goldman Sachs", Domain: "goldmansachs.com", Industry: "Investment Banking", Ticker: "GS"},
	{Name: "Morgan Stanley", Domain: "morganstanley.com", Industry: "Investment Banking", Ticker: "MS"},
	{Name: "Bank of America", Domain: "bankofamerica.com", Industry: "Banking", Ticker: "BAC"},
	{Name: "Wells Fargo", Domain: "wellsfargo.com", Industry: "Banking", Ticker: "WFC"},
	{Name: "Citigroup", Domain: "citigroup.com", Industry: "Banking", Ticker: "C"},
	{Name: "BlackRock", Domain: "blackrock.com", Industry: "Asset Management", Ticker: "BLK"},
	{Name: "Vanguard", Domain: "vanguard.com", Industry: "Asset Management"},
	{Name: "Fidelity", Domain: "fidelity.com", Industry: "Asset Management"},
	{Name: "State Street", Domain: "statestreet.com", Industry: "Asset Management", Ticker: "STT"},
	{Name: "Charles Schwab", Domain: "schwab.com", Industry: "Brokerage", Ticker: "SCHW"},
	{Name: "American Express", Domain: "americanexpress.com", Industry: "Financial Services", Ticker: "AXP"},
	{Name: "Visa", Domain: "visa.com", Industry: "Payments", Ticker: "V"},
	{Name: "Mastercard", Domain: "mastercard.com", Industry: "Payments", Ticker: "MA"},
	{Name: "PayPal", Domain: "paypal.com", Industry: "Payments", Ticker: "PYPL"},
	{Name: "Stripe", Domain: "stripe.com", Industry: "Payments"},
	{Name: "Block", Domain: "block.xyz", Industry: "Payments", Ticker: "SQ"},
	{Name: "AIG", Domain: "aig.com", Industry: "Insurance", Ticker: "AIG"},
	{Name: "MetLife", Domain: "metlife.com", Industry: "Insurance", Ticker: "MET"},
	{Name: "Prudential Financial", Domain: "prudential.com", Industry: "Insurance", Ticker: "PRU"},
	{Name: "Google", Domain: "google.com", Industry: "Technology", Ticker: "GOOGL"},
	{Name: "Microsoft", Domain: "microsoft.com", Industry: "Technology", Ticker: "MSFT"},
	{Name: "Apple", Domain: "apple.com", Industry: "Technology", Ticker: "AAPL"},
	{Name: "Amazon", Domain: "amazon.com", Industry: "Technology", Ticker: "AMZN"},
	{Name: "Meta", Domain: "meta.com", Industry: "Technology", Ticker: "META"},
	{Name: "Netflix", Domain: "netflix.com", Industry: "Technology", Ticker: "NFLX"},
	{Name: "Salesforce", Domain: "salesforce.com", Industry: "Technology", Ticker: "CRM"},
	{Name: "Oracle", Domain: "oracle.com", Industry: "Technology", Ticker: "ORCL"},
	{Name: "IBM", Domain: "ibm.com", Industry: "Technology", Ticker: "IBM"},
	{Name: "Intuit", Domain: "intuit.com", Industry: "Technology", Ticker: "INTU"},
}
