package categories

// Taxonomy is the fixed list of storefront categories, grouped by department.
var Taxonomy = []string{
	// Electronics & Technology
	"Electronics",
	"Computers & Laptops",
	"Mobile Phones & Accessories",
	"Audio & Headphones",
	"Cameras & Photography",
	"Gaming & Consoles",
	"Smart Home & IoT",
	"Wearable Technology",
	"TV & Home Entertainment",
	"Tablets & E-readers",

	// Fashion & Apparel
	"Fashion",
	"Men's Clothing",
	"Women's Clothing",
	"Kids & Baby Clothing",
	"Shoes & Footwear",
	"Bags & Luggage",
	"Jewelry & Watches",
	"Sunglasses & Eyewear",
	"Accessories",
	"Lingerie & Sleepwear",

	// Health & Beauty
	"Beauty & Personal Care",
	"Skincare",
	"Makeup & Cosmetics",
	"Hair Care",
	"Fragrances & Perfumes",
	"Health & Wellness",
	"Vitamins & Supplements",
	"Medical Supplies",
	"Fitness & Nutrition",
	"Oral Care",

	// Home & Living
	"Home & Garden",
	"Furniture",
	"Home Decor",
	"Kitchen & Dining",
	"Bedding & Bath",
	"Lighting",
	"Storage & Organization",
	"Garden & Outdoor",
	"Tools & Hardware",
	"Appliances",

	// Sports & Recreation
	"Sports & Outdoors",
	"Fitness Equipment",
	"Outdoor Recreation",
	"Team Sports",
	"Water Sports",
	"Winter Sports",
	"Cycling",
	"Running & Jogging",
	"Yoga & Pilates",
	"Camping & Hiking",

	// Food & Beverages
	"Food & Beverages",
	"Grocery & Gourmet",
	"Organic & Natural",
	"Snacks & Confectionery",
	"Beverages",
	"Baby Food",
	"Diet & Weight Loss",
	"International Foods",
	"Baking & Cooking",
	"Tea & Coffee",

	// Books & Media
	"Books & Literature",
	"Educational Books",
	"Fiction & Non-fiction",
	"Children's Books",
	"Comics & Graphic Novels",
	"Movies & TV Shows",
	"Music & Vinyl",
	"Video Games",
	"Software",
	"Digital Content",

	// Toys & Games
	"Toys & Games",
	"Educational Toys",
	"Action Figures",
	"Dolls & Accessories",
	"Building & Construction",
	"Board Games & Puzzles",
	"Electronic Toys",
	"Outdoor Play",
	"Arts & Crafts",
	"Baby & Toddler Toys",

	// Automotive
	"Automotive",
	"Car Accessories",
	"Car Electronics",
	"Motorcycle Accessories",
	"Car Care & Maintenance",
	"Replacement Parts",
	"Tires & Wheels",
	"Tools & Equipment",
	"Interior Accessories",
	"Exterior Accessories",

	// Baby & Kids
	"Baby & Kids",
	"Baby Care",
	"Baby Feeding",
	"Baby Safety",
	"Baby Furniture",
	"Strollers & Car Seats",
	"Baby Clothing",
	"Maternity",
	"Kids Activities",
	"School Supplies",

	// Pet Supplies
	"Pet Supplies",
	"Dog Supplies",
	"Cat Supplies",
	"Bird Supplies",
	"Fish & Aquarium",
	"Small Animal Supplies",
	"Pet Food",
	"Pet Toys",
	"Pet Health",
	"Pet Grooming",

	// Office & Business
	"Office Supplies",
	"Stationery",
	"Office Electronics",
	"Office Furniture",
	"Business Equipment",
	"Printing & Packaging",
	"School & Educational",
	"Art Supplies",
	"Calendars & Planners",
	"Filing & Organization",

	// Industrial & Scientific
	"Industrial & Scientific",
	"Lab Equipment",
	"Safety Equipment",
	"Electrical Equipment",
	"Mechanical Components",
	"Measuring Instruments",
	"Industrial Supplies",
	"Professional Tools",
	"Scientific Instruments",
	"Raw Materials",

	// Specialty
	"Handmade & Crafts",
	"Vintage & Collectibles",
	"Art & Antiques",
	"Musical Instruments",
	"Party Supplies",
	"Wedding Supplies",
	"Religious Items",
	"Travel Accessories",
	"Gift Cards",
	"Services",
}

type keywordSet struct {
	category string
	keywords []string
}

// categoryKeywords is scored in declaration order; the order is the tie-break.
var categoryKeywords = []keywordSet{
	{"Electronics", []string{"electronic", "device", "gadget", "tech", "digital"}},
	{"Computers & Laptops", []string{"laptop", "computer", "pc", "desktop", "notebook", "macbook", "chromebook"}},
	{"Mobile Phones & Accessories", []string{"phone", "smartphone", "mobile", "iphone", "android", "case", "charger", "cable"}},
	{"Audio & Headphones", []string{"headphone", "earphone", "speaker", "audio", "sound", "music", "bluetooth", "wireless"}},
	{"Cameras & Photography", []string{"camera", "lens", "photography", "photo", "dslr", "mirrorless", "tripod"}},
	{"Gaming & Consoles", []string{"gaming", "game", "console", "playstation", "xbox", "nintendo", "controller"}},
	{"Smart Home & IoT", []string{"smart", "alexa", "google home", "iot", "automation", "hub", "sensor"}},
	{"Wearable Technology", []string{"smartwatch", "fitness tracker", "wearable", "apple watch", "fitbit"}},
	{"TV & Home Entertainment", []string{"tv", "television", "monitor", "projector", "streaming", "entertainment"}},
	{"Tablets & E-readers", []string{"tablet", "ipad", "kindle", "e-reader", "ebook"}},

	{"Fashion", []string{"fashion", "style", "trendy", "designer", "clothing"}},
	{"Men's Clothing", []string{"men", "mens", "shirt", "pants", "suit", "jacket", "male"}},
	{"Women's Clothing", []string{"women", "womens", "dress", "blouse", "skirt", "female", "ladies"}},
	{"Kids & Baby Clothing", []string{"kids", "baby", "children", "toddler", "infant", "child"}},
	{"Shoes & Footwear", []string{"shoes", "sneakers", "boots", "sandals", "footwear", "heels"}},
	{"Bags & Luggage", []string{"bag", "handbag", "backpack", "luggage", "suitcase", "purse"}},
	{"Jewelry & Watches", []string{"jewelry", "watch", "necklace", "ring", "bracelet", "earring"}},
	{"Sunglasses & Eyewear", []string{"sunglasses", "glasses", "eyewear", "frames", "lens"}},
	{"Accessories", []string{"accessory", "belt", "scarf", "hat", "cap", "gloves"}},

	{"Beauty & Personal Care", []string{"beauty", "cosmetic", "personal care", "skincare", "makeup"}},
	{"Skincare", []string{"skincare", "cream", "lotion", "serum", "moisturizer", "cleanser"}},
	{"Makeup & Cosmetics", []string{"makeup", "lipstick", "foundation", "mascara", "eyeshadow", "cosmetic"}},
	{"Hair Care", []string{"shampoo", "conditioner", "hair", "styling", "treatment"}},
	{"Fragrances & Perfumes", []string{"perfume", "fragrance", "cologne", "scent", "eau de"}},
	{"Health & Wellness", []string{"health", "wellness", "medical", "therapeutic", "remedy"}},
	{"Vitamins & Supplements", []string{"vitamin", "supplement", "protein", "mineral", "nutrition"}},
	{"Fitness & Nutrition", []string{"fitness", "workout", "exercise", "gym", "nutrition", "protein"}},

	{"Home & Garden", []string{"home", "house", "garden", "outdoor", "plant", "decor"}},
	{"Furniture", []string{"furniture", "chair", "table", "sofa", "bed", "cabinet", "desk"}},
	{"Kitchen & Dining", []string{"kitchen", "cooking", "dining", "cookware", "utensil", "appliance"}},
	{"Bedding & Bath", []string{"bedding", "sheet", "pillow", "towel", "bathroom", "bath"}},
	{"Lighting", []string{"light", "lamp", "led", "bulb", "lighting", "fixture"}},
	{"Storage & Organization", []string{"storage", "organizer", "container", "box", "shelf"}},
	{"Tools & Hardware", []string{"tool", "hammer", "screwdriver", "drill", "hardware", "repair"}},
	{"Appliances", []string{"appliance", "refrigerator", "washing machine", "microwave", "oven"}},

	{"Sports & Outdoors", []string{"sport", "outdoor", "recreation", "activity", "athletic"}},
	{"Fitness Equipment", []string{"fitness", "gym", "exercise", "workout", "equipment", "weight"}},
	{"Outdoor Recreation", []string{"camping", "hiking", "outdoor", "adventure", "nature"}},
	{"Team Sports", []string{"football", "basketball", "soccer", "baseball", "volleyball"}},
	{"Water Sports", []string{"swimming", "diving", "surfing", "water sport", "pool"}},
	{"Cycling", []string{"bike", "bicycle", "cycling", "cycle", "mountain bike"}},
	{"Running & Jogging", []string{"running", "jogging", "marathon", "runner", "athletic"}},
	{"Yoga & Pilates", []string{"yoga", "pilates", "meditation", "mat", "zen"}},

	{"Food & Beverages", []string{"food", "snack", "drink", "beverage", "edible"}},
	{"Grocery & Gourmet", []string{"grocery", "gourmet", "organic", "fresh", "natural"}},
	{"Tea & Coffee", []string{"tea", "coffee", "espresso", "latte", "brew", "caffeine"}},

	{"Books & Literature", []string{"book", "novel", "literature", "reading", "author"}},
	{"Educational Books", []string{"educational", "textbook", "learning", "study", "academic"}},
	{"Movies & TV Shows", []string{"movie", "film", "dvd", "blu-ray", "tv show", "series"}},
	{"Video Games", []string{"video game", "gaming", "console game", "pc game", "game"}},

	{"Toys & Games", []string{"toy", "game", "play", "fun", "entertainment"}},
	{"Educational Toys", []string{"educational toy", "learning toy", "stem", "educational"}},
	{"Board Games & Puzzles", []string{"board game", "puzzle", "card game", "strategy"}},
	{"Arts & Crafts", []string{"art", "craft", "drawing", "painting", "creative"}},

	{"Automotive", []string{"car", "auto", "vehicle", "automotive", "motor"}},
	{"Car Accessories", []string{"car accessory", "auto accessory", "car part", "vehicle"}},

	{"Baby & Kids", []string{"baby", "infant", "toddler", "kids", "children"}},
	{"Baby Care", []string{"baby care", "diaper", "formula", "baby food", "infant"}},
	{"Maternity", []string{"maternity", "pregnancy", "pregnant", "expecting"}},

	{"Pet Supplies", []string{"pet", "dog", "cat", "animal", "pet supply"}},
	{"Dog Supplies", []string{"dog", "puppy", "canine", "dog food", "dog toy"}},
	{"Cat Supplies", []string{"cat", "kitten", "feline", "cat food", "litter"}},

	{"Office Supplies", []string{"office", "business", "stationery", "pen", "paper"}},
	{"School & Educational", []string{"school", "student", "educational", "learning", "study"}},
}

// quickMatches short-circuits scoring for very common items. Checked in order.
var quickMatches = []struct {
	term     string
	category string
}{
	{"banana", "Food & Beverages"},
	{"apple", "Food & Beverages"},
	{"orange", "Food & Beverages"},
	{"rice", "Food & Beverages"},
	{"bread", "Food & Beverages"},
	{"milk", "Food & Beverages"},
	{"pen", "Office Supplies"},
	{"pencil", "Office Supplies"},
	{"paper", "Office Supplies"},
	{"notebook", "Office Supplies"},
	{"shirt", "Fashion"},
	{"dress", "Fashion"},
	{"shoes", "Shoes & Footwear"},
	{"phone", "Mobile Phones & Accessories"},
	{"laptop", "Computers & Laptops"},
}

var popular = []string{
	"Electronics",
	"Fashion",
	"Beauty & Personal Care",
	"Home & Garden",
	"Sports & Outdoors",
	"Books & Literature",
	"Toys & Games",
	"Automotive",
	"Baby & Kids",
	"Pet Supplies",
	"Food & Beverages",
	"Health & Wellness",
}
