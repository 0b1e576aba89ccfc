package category

import "regexp"

// defaultRules is the static ruleset for Brazilian merchants. Priority ties
// are broken by declaration order, so more specific rules for a keyword should
// be declared before broader ones.
var defaultRules = []Rule{
	// Entertainment / webnovels
	{Pattern: regexp.MustCompile(`(?i)cloudary|webnovel`), Category: "Entertainment/Webnovels", Priority: 1},

	// Education
	{Pattern: regexp.MustCompile(`(?i)concurso|curso|educacao|ensino|estudo|preparatorio`), Category: "Education/Exam Prep", Priority: 1},

	// E-commerce
	{Pattern: regexp.MustCompile(`(?i)amazon|mercado livre|magazine luiza|americanas|casas bahia|shoptime`), Category: "Shopping/E-commerce", Priority: 1},

	// Food delivery
	{Pattern: regexp.MustCompile(`(?i)ifood|uber eats|rappi|i food`), Category: "Food/Delivery", Priority: 1},

	// Restaurants
	{Pattern: regexp.MustCompile(`(?i)restaurante|lanchonete|padaria|confeitaria|buffet`), Category: "Food/Restaurant", Priority: 2},

	// Fast food
	{Pattern: regexp.MustCompile(`(?i)mcdonalds|burger king|subway|pizza hut|dominos|habibs|spoleto`), Category: "Food/Fast Food", Priority: 1},

	// Ride share
	{Pattern: regexp.MustCompile(`(?i)uber|99|cabify|taxi|transporte`), Category: "Transportation/Ride Share", Priority: 1},

	// Public transportation
	{Pattern: regexp.MustCompile(`(?i)metro|onibus|bilhete unico|metroviario`), Category: "Transportation/Public", Priority: 1},

	// Gas stations
	{Pattern: regexp.MustCompile(`(?i)posto|combustivel|gasolina|etanol|shell|ipiranga|petrobras|texaco`), Category: "Transportation/Gas", Priority: 1},

	// Streaming
	{Pattern: regexp.MustCompile(`(?i)netflix|spotify|disney|prime video|hbo|paramount|youtube premium|apple music`), Category: "Entertainment/Streaming", Priority: 1},

	// Gaming
	{Pattern: regexp.MustCompile(`(?i)steam|playstation|xbox|nintendo|epic games`), Category: "Entertainment/Gaming", Priority: 1},

	// Phone carriers, anchored: these names are too short to match anywhere.
	{Pattern: regexp.MustCompile(`(?i)^(oi|vivo|claro|tim|nextel)`), Category: "Utilities/Phone", Priority: 1},

	// Internet
	{Pattern: regexp.MustCompile(`(?i)internet|banda larga|fibra|tim|vivo|claro|oi|net`), Category: "Utilities/Internet", Priority: 1},

	// Energy
	{Pattern: regexp.MustCompile(`(?i)energia|eletrica|light|cemig|copel|ceb|cpfl`), Category: "Utilities/Energy", Priority: 1},

	// Water
	{Pattern: regexp.MustCompile(`(?i)agua|saneamento|sabesp|copasa|caesb`), Category: "Utilities/Water", Priority: 1},

	// Banking fees
	{Pattern: regexp.MustCompile(`(?i)taxa|anuidade|tarifa|manutencao|juros|iof`), Category: "Financial/Fees", Priority: 1},

	// Supermarkets
	{Pattern: regexp.MustCompile(`(?i)carrefour|pao de acucar|extra|atacadao|assai|walmart|big|supermercado`), Category: "Shopping/Supermarket", Priority: 1},

	// Pharmacies
	{Pattern: regexp.MustCompile(`(?i)drogasil|raia|pacheco|ultrafarma|drogaria|farmacia`), Category: "Health/Pharmacy", Priority: 1},

	// Healthcare
	{Pattern: regexp.MustCompile(`(?i)hospital|clinica|medico|dentista|laboratorio|unimed|amil|bradesco saude`), Category: "Health/Medical", Priority: 1},

	// Clothing
	{Pattern: regexp.MustCompile(`(?i)zara|renner|riachuelo|c&a|h&m|gucci|nike|adidas`), Category: "Shopping/Clothing", Priority: 1},

	// Electronics
	{Pattern: regexp.MustCompile(`(?i)extra|fast shop|casas bahia|magazine|multilaser|positivo`), Category: "Shopping/Electronics", Priority: 1},

	// Sports retail
	{Pattern: regexp.MustCompile(`(?i)centauro|decathlon|artwalk|netshoes`), Category: "Shopping/Sports", Priority: 1},

	// Auto maintenance
	{Pattern: regexp.MustCompile(`(?i)auto pecas|ferragem|oficina|troca de oleo|pneus`), Category: "Transportation/Auto Maintenance", Priority: 1},

	// Insurance
	{Pattern: regexp.MustCompile(`(?i)seguro|insurance|porto seguro|sul america`), Category: "Financial/Insurance", Priority: 1},

	// Investment
	{Pattern: regexp.MustCompile(`(?i)investimento|tesouro|cdb|lci|lca|acoes|b3`), Category: "Financial/Investment", Priority: 1},
}
