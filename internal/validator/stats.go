package validator

// physiologicalBound is an incompatible-with-life band for one test. These
// bounds are deliberately far wider than the knowledge base's normal ranges;
// a value outside them cannot have come from a living patient and points to
// fabrication or transcription error.
type physiologicalBound struct {
	Min float64
	Max float64
}

var physiologicalBounds = map[string]physiologicalBound{
	"Glucose":           {Min: 20, Max: 1500},
	"HbA1c":             {Min: 2.5, Max: 20},
	"Hemoglobin":        {Min: 3, Max: 25},
	"Hematocrit":        {Min: 10, Max: 70},
	"RBC Count":         {Min: 1, Max: 10},
	"WBC Count":         {Min: 0.1, Max: 200},
	"Platelet Count":    {Min: 5, Max: 2000},
	"Total Cholesterol": {Min: 50, Max: 1000},
	"HDL Cholesterol":   {Min: 5, Max: 150},
	"LDL Cholesterol":   {Min: 10, Max: 600},
	"Triglycerides":     {Min: 10, Max: 5000},
	"TSH":               {Min: 0.005, Max: 150},
	"T3":                {Min: 10, Max: 800},
	"T4":                {Min: 0.5, Max: 30},
	"ALT":               {Min: 2, Max: 5000},
	"AST":               {Min: 2, Max: 5000},
	"Bilirubin":         {Min: 0.05, Max: 50},
	"Creatinine":        {Min: 0.1, Max: 25},
	"Urea":              {Min: 1, Max: 300},
	"Sodium":            {Min: 100, Max: 180},
	"Potassium":         {Min: 1.5, Max: 10},
}

// populationStat holds the fixed population mean and standard deviation used
// for z-score outlier detection.
type populationStat struct {
	Mean float64
	SD   float64
}

var populationStats = map[string]populationStat{
	"Glucose":           {Mean: 95, SD: 15},
	"HbA1c":             {Mean: 5.5, SD: 0.7},
	"Hemoglobin":        {Mean: 14, SD: 1.5},
	"Hematocrit":        {Mean: 42, SD: 4.5},
	"RBC Count":         {Mean: 4.9, SD: 0.5},
	"WBC Count":         {Mean: 7, SD: 1.8},
	"Platelet Count":    {Mean: 250, SD: 60},
	"Total Cholesterol": {Mean: 190, SD: 35},
	"HDL Cholesterol":   {Mean: 50, SD: 12},
	"LDL Cholesterol":   {Mean: 110, SD: 30},
	"Triglycerides":     {Mean: 120, SD: 50},
	"TSH":               {Mean: 2.0, SD: 1.2},
	"T3":                {Mean: 120, SD: 30},
	"T4":                {Mean: 8, SD: 2},
	"ALT":               {Mean: 25, SD: 12},
	"AST":               {Mean: 24, SD: 10},
	"Creatinine":        {Mean: 0.95, SD: 0.25},
	"Urea":              {Mean: 14, SD: 4.5},
	"Sodium":            {Mean: 140, SD: 2.5},
	"Potassium":         {Mean: 4.3, SD: 0.4},
	"Vitamin D":         {Mean: 28, SD: 10},
	"Vitamin B12":       {Mean: 450, SD: 180},
}
