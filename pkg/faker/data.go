package faker

// =============================================================================
// Data — Identity
// =============================================================================

// firstNames contains common given names.
var firstNames = []string{
	"John", "Jane", "Alex", "Maria", "Sam", "Taylor", "Jordan", "Morgan",
	"Casey", "Riley", "Avery", "Quinn", "Elena", "Marcus", "Priya", "Hiro",
	"Sofia", "Liam", "Noah", "Emma", "Olivia", "Ava", "Lucas", "Mia",
}

// lastNames contains common family names.
var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson",
}

// jobLevels contains seniority levels for job title generation.
var jobLevels = []string{
	"Senior", "Junior", "Lead", "Principal", "Staff",
}

// jobFields contains domain fields for job title generation.
var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales",
	"Operations", "Security", "Infrastructure", "Quality", "Research",
}

// jobRoles contains role titles for job title generation.
var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect",
	"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
}

// =============================================================================
// Data — Internet
// =============================================================================

// emailDomains contains safe example email domains.
var emailDomains = []string{
	"example.com", "example.org", "test.io", "demo.org", "mail.test",
}

// userAgents contains realistic browser user agent strings.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
}

// words contains filler words for slugs, sentences, and hostnames.
var words = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "omega", "sigma", "theta",
	"quick", "brown", "fox", "lazy", "swift", "silent", "bright", "amber",
	"cedar", "river", "stone", "cloud", "ember", "frost", "grove", "harbor",
}

// =============================================================================
// Data — Geography
// =============================================================================

// cities contains city names.
var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"San Francisco", "Seattle", "Austin", "Denver", "Boston",
}

// states contains state and province names.
var states = []string{
	"California", "Texas", "New York", "Florida", "Illinois",
	"Washington", "Colorado", "Massachusetts",
}

// countryCodes contains ISO 3166-1 alpha-2 country codes.
var countryCodes = []string{
	"US", "GB", "CA", "DE", "FR", "JP", "AU", "NL", "SE", "BR",
}

// streets contains street names for address generation.
var streets = []string{
	"Main St", "Oak Ave", "Park Blvd", "Cedar Ln", "Elm St",
	"Maple Dr", "Pine Rd", "Lake View Ter",
}

// =============================================================================
// Data — Commerce
// =============================================================================

// productAdjectives contains adjectives for product name generation.
var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Gorgeous", "Practical", "Modern", "Vintage", "Premium",
	"Luxurious", "Compact", "Ergonomic", "Lightweight", "Durable",
}

// productMaterials contains material names for product name generation.
var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton",
	"Silk", "Leather", "Bamboo", "Bronze", "Copper",
	"Ceramic", "Plastic", "Glass", "Marble", "Titanium",
}

// productNouns contains product nouns for product name generation.
var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Speaker",
	"Notebook", "Pen", "Mug", "Bottle", "Gloves",
}

// colors contains color names.
var colors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
}

// companyNames and companySuffixes feed company name generation.
var companyNames = []string{
	"Acme", "Globex", "Initech", "Umbrella", "Stark", "Wayne", "Vandelay",
	"Hooli", "Massive", "Aperture",
}

var companySuffixes = []string{
	"Corp", "Inc", "LLC", "Ltd", "Group",
}

// =============================================================================
// Data — Finance
// =============================================================================

// currencyCodes contains ISO 4217 currency codes.
var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
	"SEK", "NZD", "MXN", "SGD", "HKD", "NOK", "KRW", "TRY",
}

// ibanPrefix defines country code, total IBAN length, and a sample bank code.
type ibanPrefix struct {
	country    string
	length     int
	bankPrefix string
}

// ibanPrefixes contains simplified IBAN country definitions.
var ibanPrefixes = []ibanPrefix{
	{"GB", 22, "WEST"},
	{"DE", 22, "DEUT"},
	{"FR", 27, "BNPA"},
	{"ES", 24, "BBVA"},
	{"IT", 27, "UCRI"},
	{"NL", 18, "ABNA"},
}
