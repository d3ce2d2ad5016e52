package strategies

import "trustcart/internal/models"

// bundleConfigs holds the bundle template for every category that supports
// generated bundles. Categories not listed here never get one.
var bundleConfigs = map[string]models.BundleConfig{
	"Electronics":                 {Name: "Tech Bundle", Color: "#3B82F6", Discount: 15, Keywords: []string{"smartphone", "laptop", "tablet", "headphone", "charger", "cable"}},
	"Fashion":                     {Name: "Style Pack", Color: "#EC4899", Discount: 20, Keywords: []string{"dress", "shirt", "pants", "shoes", "bag", "accessory"}},
	"Beauty":                      {Name: "Beauty Kit", Color: "#F59E0B", Discount: 25, Keywords: []string{"skincare", "makeup", "cream", "serum", "lipstick", "foundation"}},
	"Health":                      {Name: "Wellness Pack", Color: "#10B981", Discount: 18, Keywords: []string{"supplement", "vitamin", "protein", "medicine", "fitness", "health"}},
	"Home & Garden":               {Name: "Home Essentials", Color: "#8B5CF6", Discount: 22, Keywords: []string{"furniture", "decor", "kitchen", "garden", "cleaning", "storage"}},
	"Kitchen":                     {Name: "Kitchen Set", Color: "#EF4444", Discount: 20, Keywords: []string{"appliance", "cookware", "utensil", "knife", "pan", "pot"}},
	"Sports":                      {Name: "Fitness Bundle", Color: "#06B6D4", Discount: 15, Keywords: []string{"equipment", "fitness", "gym", "exercise", "sports", "training"}},
	"Books":                       {Name: "Learning Pack", Color: "#84CC16", Discount: 30, Keywords: []string{"book", "educational", "novel", "guide", "manual", "series"}},
	"Toys":                        {Name: "Play Set", Color: "#F97316", Discount: 25, Keywords: []string{"toy", "game", "puzzle", "educational", "electronic", "kids"}},
	"Computers & Laptops":         {Name: "Tech Pro Bundle", Color: "#6366F1", Discount: 12, Keywords: []string{"laptop", "computer", "pc", "desktop", "notebook"}},
	"Mobile Phones & Accessories": {Name: "Mobile Complete Pack", Color: "#8B5CF6", Discount: 18, Keywords: []string{"phone", "smartphone", "case", "charger", "cable"}},
	"Audio & Headphones":          {Name: "Audio Experience Set", Color: "#EC4899", Discount: 20, Keywords: []string{"headphone", "speaker", "audio", "sound", "music"}},
	"Cameras & Photography":       {Name: "Photography Kit", Color: "#14B8A6", Discount: 15, Keywords: []string{"camera", "lens", "photography", "tripod"}},
	"Gaming & Consoles":           {Name: "Gaming Ultimate Pack", Color: "#F59E0B", Discount: 22, Keywords: []string{"gaming", "console", "controller", "game"}},
	"Men's Clothing":              {Name: "Men's Style Pack", Color: "#3B82F6", Discount: 25, Keywords: []string{"men", "shirt", "pants", "suit", "jacket"}},
	"Women's Clothing":            {Name: "Women's Fashion Set", Color: "#EC4899", Discount: 25, Keywords: []string{"women", "dress", "blouse", "skirt", "female"}},
	"Shoes & Footwear":            {Name: "Footwear Collection", Color: "#8B5CF6", Discount: 20, Keywords: []string{"shoes", "sneakers", "boots", "sandals"}},
	"Skincare":                    {Name: "Skincare Routine Kit", Color: "#10B981", Discount: 30, Keywords: []string{"skincare", "cream", "serum", "moisturizer"}},
	"Makeup & Cosmetics":          {Name: "Makeup Essentials", Color: "#F59E0B", Discount: 25, Keywords: []string{"makeup", "lipstick", "foundation", "mascara"}},
	"Hair Care":                   {Name: "Hair Care Set", Color: "#8B5CF6", Discount: 20, Keywords: []string{"shampoo", "conditioner", "hair", "styling"}},
	"Furniture":                   {Name: "Home Furniture Pack", Color: "#6B7280", Discount: 15, Keywords: []string{"furniture", "chair", "table", "sofa", "bed"}},
	"Kitchen & Dining":            {Name: "Kitchen Essentials", Color: "#EF4444", Discount: 22, Keywords: []string{"kitchen", "cooking", "cookware", "utensil"}},
	"Fitness Equipment":           {Name: "Home Gym Set", Color: "#059669", Discount: 18, Keywords: []string{"fitness", "gym", "exercise", "workout"}},
	"Baby & Kids":                 {Name: "Baby Care Bundle", Color: "#F472B6", Discount: 25, Keywords: []string{"baby", "kids", "children", "infant"}},
	"Pet Supplies":                {Name: "Pet Care Pack", Color: "#A855F7", Discount: 20, Keywords: []string{"pet", "dog", "cat", "animal"}},
	"Office Supplies":             {Name: "Office Productivity Set", Color: "#6B7280", Discount: 15, Keywords: []string{"office", "stationery", "business", "work"}},
}

// BundleConfigFor returns the bundle template for category, if there is one.
func BundleConfigFor(category string) (models.BundleConfig, bool) {
	cfg, ok := bundleConfigs[category]
	return cfg, ok
}
