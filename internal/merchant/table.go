package merchant

// Entry maps a cleaned merchant key to its canonical display name.
type Entry struct {
	Key  string
	Name string
}

// canonicalMerchants is the static canonical-name table. Order matters: the
// containment fallback scans it top to bottom and the first matching entry
// wins, so short ambiguous keys ("99", "oi") resolve to whichever entry was
// declared first.
var canonicalMerchants = []Entry{
	// Entertainment / webnovels
	{Key: "cloudary holdings", Name: "Cloudary Holdings (Webnovel)"},
	{Key: "cloudary holdings ho", Name: "Cloudary Holdings (Webnovel)"},
	{Key: "cloudary", Name: "Cloudary Holdings (Webnovel)"},

	// Education
	{Key: "pg *concursos", Name: "Concursos Inteligentes"},
	{Key: "concursos", Name: "Concursos Inteligentes"},
	{Key: "concurso inteligente", Name: "Concursos Inteligentes"},

	// E-commerce
	{Key: "amazon", Name: "Amazon"},
	{Key: "amazon.com.br", Name: "Amazon"},
	{Key: "mercado livre", Name: "Mercado Livre"},
	{Key: "magazine luiza", Name: "Magazine Luiza"},
	{Key: "americanas", Name: "Lojas Americanas"},

	// Food delivery
	{Key: "ifood", Name: "iFood"},
	{Key: "uber eats", Name: "Uber Eats"},
	{Key: "rappi", Name: "Rappi"},

	// Transportation
	{Key: "uber", Name: "Uber"},
	{Key: "99", Name: "99 Pop"},
	{Key: "cabify", Name: "Cabify"},

	// Streaming
	{Key: "netflix", Name: "Netflix"},
	{Key: "spotify", Name: "Spotify"},
	{Key: "disney", Name: "Disney+"},
	{Key: "prime video", Name: "Prime Video"},

	// Utilities
	{Key: "oi", Name: "OI"},
	{Key: "vivo", Name: "Vivo"},
	{Key: "claro", Name: "Claro"},
	{Key: "tim", Name: "TIM"},
	{Key: "energia", Name: "Concessionária de Energia"},
	{Key: "agua", Name: "Concessionária de Água"},
	{Key: "saneamento", Name: "Concessionária de Saneamento"},

	// Banking
	{Key: "c6 bank", Name: "C6 Bank"},
	{Key: "nubank", Name: "Nubank"},
	{Key: "inter", Name: "Banco Inter"},
	{Key: "itau", Name: "Itaú"},
	{Key: "bradesco", Name: "Bradesco"},
	{Key: "santander", Name: "Santander"},

	// Supermarkets
	{Key: "carrefour", Name: "Carrefour"},
	{Key: "pao de acucar", Name: "Pão de Açúcar"},
	{Key: "extra", Name: "Extra"},
	{Key: "atacadao", Name: "Atacadão"},
	{Key: "assai", Name: "Assaí"},

	// Gas stations
	{Key: "shell", Name: "Shell"},
	{Key: "ipiranga", Name: "Ipiranga"},
	{Key: "petrobras", Name: "Petrobras"},
	{Key: "texaco", Name: "Texaco"},

	// Fast food
	{Key: "mcdonalds", Name: "McDonald's"},
	{Key: "burger king", Name: "Burger King"},
	{Key: "subway", Name: "Subway"},
	{Key: "pizza hut", Name: "Pizza Hut"},
	{Key: "dominos", Name: "Domino's Pizza"},

	// Retail
	{Key: "centauro", Name: "Centauro"},
	{Key: "nike", Name: "Nike"},
	{Key: "adidas", Name: "Adidas"},
	{Key: "zara", Name: "Zara"},
	{Key: "renner", Name: "Renner"},
	{Key: "riachuelo", Name: "Riachuelo"},

	// Pharmacies
	{Key: "drogasil", Name: "Drogasil"},
	{Key: "raia", Name: "Raia Drogasil"},
	{Key: "pacheco", Name: "Pacheco"},
	{Key: "ultrafarma", Name: "Ultrafarma"},
}
