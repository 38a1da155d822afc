package knowledge

// definitionTable is the compiled-in knowledge base. Reference ranges follow
// commonly published adult laboratory values; they are deliberately static
// data, not loaded from external files at runtime.
var definitionTable = []TestDefinition{
	{
		Name:     "Hemoglobin",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"male":   {Min: 13.5, Max: 17.5, Unit: "g/dL"},
			"female": {Min: 12.0, Max: 15.5, Unit: "g/dL"},
			"child":  {Min: 11.0, Max: 16.0, Unit: "g/dL"},
		},
		Explanation: "Hemoglobin is the oxygen-carrying protein in red blood cells.",
		HighMeans: &Interpretation{
			Condition: "Polycythemia (elevated hemoglobin)",
			Causes:    []string{"Dehydration", "Smoking", "Living at high altitude", "Polycythemia vera"},
			Symptoms:  []string{"Headache", "Dizziness", "Flushed skin", "Blurred vision"},
			Severity:  "Moderate",
			NextStep:  "Repeat the test after adequate hydration and discuss with a physician.",
		},
		LowMeans: &Interpretation{
			Condition: "Anemia (low hemoglobin)",
			Causes:    []string{"Iron deficiency", "Vitamin B12 or folate deficiency", "Chronic blood loss", "Chronic kidney disease"},
			Symptoms:  []string{"Fatigue", "Pale skin", "Shortness of breath", "Cold hands and feet"},
			Severity:  "Moderate",
			NextStep:  "Consult a physician for iron studies and dietary review.",
		},
	},
	{
		Name:     "Hematocrit",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"male":   {Min: 38.8, Max: 50.0, Unit: "%"},
			"female": {Min: 34.9, Max: 44.5, Unit: "%"},
		},
		Explanation: "Hematocrit is the fraction of blood volume occupied by red blood cells.",
		HighMeans: &Interpretation{
			Condition: "Elevated hematocrit",
			Causes:    []string{"Dehydration", "Lung disease", "Polycythemia vera"},
			Symptoms:  []string{"Headache", "Dizziness", "Fatigue"},
			Severity:  "Moderate",
			NextStep:  "Rehydrate and repeat; persistent elevation needs physician review.",
		},
		LowMeans: &Interpretation{
			Condition: "Low hematocrit",
			Causes:    []string{"Anemia", "Blood loss", "Nutritional deficiency"},
			Symptoms:  []string{"Fatigue", "Weakness", "Pallor"},
			Severity:  "Moderate",
			NextStep:  "Evaluate together with hemoglobin and red cell indices.",
		},
	},
	{
		Name:     "RBC Count",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"male":   {Min: 4.7, Max: 6.1, Unit: "million/µL"},
			"female": {Min: 4.2, Max: 5.4, Unit: "million/µL"},
		},
		Explanation: "Red blood cell count measures the concentration of oxygen-carrying cells.",
		HighMeans: &Interpretation{
			Condition: "Erythrocytosis (high red cell count)",
			Causes:    []string{"Dehydration", "Smoking", "Chronic hypoxia"},
			Symptoms:  []string{"Headache", "Blurred vision"},
			Severity:  "Mild",
			NextStep:  "Repeat after hydration; discuss with a physician if persistent.",
		},
		LowMeans: &Interpretation{
			Condition: "Low red cell count",
			Causes:    []string{"Anemia", "Bone marrow suppression", "Nutritional deficiency"},
			Symptoms:  []string{"Fatigue", "Shortness of breath"},
			Severity:  "Moderate",
			NextStep:  "Correlate with hemoglobin and consult a physician.",
		},
	},
	{
		Name:     "WBC Count",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"all": {Min: 4.0, Max: 11.0, Unit: "thousand/µL"},
		},
		Explanation: "White blood cell count reflects immune system activity.",
		HighMeans: &Interpretation{
			Condition: "Leukocytosis (elevated white cells)",
			Causes:    []string{"Acute infection", "Inflammation", "Stress response", "Steroid use"},
			Symptoms:  []string{"Fever", "Malaise", "Localized pain"},
			Severity:  "Moderate",
			NextStep:  "Look for an infection source; repeat once symptoms settle.",
		},
		LowMeans: &Interpretation{
			Condition: "Leukopenia (low white cells)",
			Causes:    []string{"Viral infection", "Bone marrow disorders", "Autoimmune disease", "Certain medications"},
			Symptoms:  []string{"Frequent infections", "Fatigue"},
			Severity:  "Moderate",
			NextStep:  "Physician review; recurrent low counts need hematology follow-up.",
		},
	},
	{
		Name:     "Platelet Count",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"all": {Min: 150, Max: 450, Unit: "thousand/µL"},
		},
		Explanation: "Platelets are the cell fragments responsible for blood clotting.",
		HighMeans: &Interpretation{
			Condition: "Thrombocytosis (elevated platelets)",
			Causes:    []string{"Iron deficiency", "Inflammation", "Post-infection reaction", "Essential thrombocythemia"},
			Symptoms:  []string{"Usually none", "Headache", "Tingling in hands or feet"},
			Severity:  "Moderate",
			NextStep:  "Repeat in a few weeks; persistent elevation needs physician review.",
		},
		LowMeans: &Interpretation{
			Condition: "Thrombocytopenia (low platelets)",
			Causes:    []string{"Viral infection such as dengue", "Immune thrombocytopenia", "Liver disease", "Certain medications"},
			Symptoms:  []string{"Easy bruising", "Prolonged bleeding", "Petechiae"},
			Severity:  "High",
			NextStep:  "Seek prompt medical attention, especially with any bleeding.",
		},
	},
	{
		Name:     "ESR",
		Category: "Complete Blood Count",
		Ranges: map[string]Range{
			"male":   {Min: 0, Max: 15, Unit: "mm/hr"},
			"female": {Min: 0, Max: 20, Unit: "mm/hr"},
		},
		Explanation: "Erythrocyte sedimentation rate is a non-specific marker of inflammation.",
		HighMeans: &Interpretation{
			Condition: "Elevated inflammatory marker",
			Causes:    []string{"Infection", "Autoimmune disease", "Anemia", "Chronic inflammation"},
			Symptoms:  []string{"Depends on underlying cause"},
			Severity:  "Mild",
			NextStep:  "Interpret together with symptoms and CRP; not diagnostic alone.",
		},
	},
	{
		Name:     "Glucose",
		Category: "Diabetes Panel",
		Ranges: map[string]Range{
			"all": {Min: 70, Max: 100, Unit: "mg/dL"},
		},
		Explanation: "Fasting blood glucose measures the sugar available to cells for energy.",
		HighMeans: &Interpretation{
			Condition: "Hyperglycemia (elevated fasting glucose)",
			Causes:    []string{"Prediabetes or diabetes", "Recent meal before the test", "Stress", "Steroid use"},
			Symptoms:  []string{"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision"},
			Severity:  "Moderate",
			NextStep:  "Confirm with a repeat fasting test or HbA1c and consult a physician.",
		},
		LowMeans: &Interpretation{
			Condition: "Hypoglycemia (low blood glucose)",
			Causes:    []string{"Prolonged fasting", "Excess diabetes medication", "Liver disease"},
			Symptoms:  []string{"Shakiness", "Sweating", "Confusion", "Palpitations"},
			Severity:  "High",
			NextStep:  "Treat promptly with fast-acting carbohydrate and seek medical advice.",
		},
		GradedBands: []GradedBand{
			{Label: "Normal", Min: 70, Max: 100},
			{Label: "Prediabetes", Min: 100.001, Max: 125.999},
			{Label: "Diabetes", Min: 126, Max: 50000},
		},
	},
	{
		Name:     "HbA1c",
		Category: "Diabetes Panel",
		Ranges: map[string]Range{
			"all": {Min: 4.0, Max: 5.6, Unit: "%"},
		},
		Explanation: "HbA1c reflects average blood glucose over the preceding two to three months.",
		HighMeans: &Interpretation{
			Condition: "Elevated glycated hemoglobin",
			Causes:    []string{"Poorly controlled diabetes", "Prediabetes", "Iron deficiency can falsely elevate"},
			Symptoms:  []string{"Often none", "Thirst", "Frequent urination"},
			Severity:  "Moderate",
			NextStep:  "Discuss glucose control with a physician; repeat in three months.",
		},
		LowMeans: &Interpretation{
			Condition: "Unusually low HbA1c",
			Causes:    []string{"Hemolytic anemia", "Recent blood loss", "Overtreatment of diabetes"},
			Symptoms:  []string{"Usually none"},
			Severity:  "Mild",
			NextStep:  "Review with a physician if unexpected.",
		},
		GradedBands: []GradedBand{
			{Label: "Normal", Min: 0, Max: 5.6},
			{Label: "Prediabetes", Min: 5.7, Max: 6.4},
			{Label: "Diabetes", Min: 6.5, Max: 50000},
		},
	},
	{
		Name:     "Total Cholesterol",
		Category: "Lipid Profile",
		Ranges: map[string]Range{
			"all": {Min: 125, Max: 200, Unit: "mg/dL"},
		},
		Explanation: "Total cholesterol sums the cholesterol carried by all lipoprotein particles.",
		HighMeans: &Interpretation{
			Condition: "Hypercholesterolemia",
			Causes:    []string{"Diet high in saturated fat", "Genetic predisposition", "Hypothyroidism", "Sedentary lifestyle"},
			Symptoms:  []string{"Usually none until cardiovascular disease develops"},
			Severity:  "Moderate",
			NextStep:  "Lifestyle changes and a full lipid review with a physician.",
		},
		LowMeans: &Interpretation{
			Condition: "Low total cholesterol",
			Causes:    []string{"Malnutrition", "Hyperthyroidism", "Liver disease"},
			Symptoms:  []string{"Usually none"},
			Severity:  "Mild",
			NextStep:  "Review nutrition; recheck with a physician if persistent.",
		},
	},
	{
		Name:     "HDL Cholesterol",
		Category: "Lipid Profile",
		Ranges: map[string]Range{
			"all": {Min: 40, Max: 60, Unit: "mg/dL"},
		},
		Explanation: "HDL is the protective lipoprotein that returns cholesterol to the liver.",
		HighMeans: &Interpretation{
			Condition: "High HDL (generally protective)",
			Causes:    []string{"Regular exercise", "Genetic factors", "Moderate alcohol intake"},
			Symptoms:  []string{"None"},
			Severity:  "Mild",
			NextStep:  "No action needed; high HDL is usually favorable.",
		},
		LowMeans: &Interpretation{
			Condition: "Low HDL",
			Causes:    []string{"Sedentary lifestyle", "Smoking", "Obesity", "Type 2 diabetes"},
			Symptoms:  []string{"None directly; raises cardiovascular risk"},
			Severity:  "Moderate",
			NextStep:  "Increase aerobic exercise and stop smoking; recheck in three months.",
		},
	},
	{
		Name:     "LDL Cholesterol",
		Category: "Lipid Profile",
		Ranges: map[string]Range{
			"all": {Min: 0, Max: 100, Unit: "mg/dL"},
		},
		Explanation: "LDL is the lipoprotein most strongly linked to arterial plaque formation.",
		HighMeans: &Interpretation{
			Condition: "Elevated LDL cholesterol",
			Causes:    []string{"Diet high in saturated and trans fat", "Familial hypercholesterolemia", "Hypothyroidism"},
			Symptoms:  []string{"Usually none until cardiovascular disease develops"},
			Severity:  "Moderate",
			NextStep:  "Dietary change; discuss statin therapy thresholds with a physician.",
		},
	},
	{
		Name:     "Triglycerides",
		Category: "Lipid Profile",
		Ranges: map[string]Range{
			"all": {Min: 0, Max: 150, Unit: "mg/dL"},
		},
		Explanation: "Triglycerides are the main storage form of fat circulating in blood.",
		HighMeans: &Interpretation{
			Condition: "Hypertriglyceridemia",
			Causes:    []string{"Diet high in sugar and refined carbohydrate", "Alcohol", "Obesity", "Uncontrolled diabetes"},
			Symptoms:  []string{"Usually none", "Very high levels can cause pancreatitis"},
			Severity:  "Moderate",
			NextStep:  "Reduce sugar and alcohol intake; recheck fasting in three months.",
		},
	},
	{
		Name:     "TSH",
		Category: "Thyroid Profile",
		Ranges: map[string]Range{
			"all": {Min: 0.4, Max: 4.0, Unit: "mIU/L"},
		},
		Explanation: "Thyroid stimulating hormone is the pituitary signal that drives thyroid output.",
		HighMeans: &Interpretation{
			Condition: "Elevated TSH (suggests underactive thyroid)",
			Causes:    []string{"Hypothyroidism", "Hashimoto's thyroiditis", "Iodine deficiency", "Recovery from illness"},
			Symptoms:  []string{"Fatigue", "Weight gain", "Cold intolerance", "Dry skin"},
			Severity:  "Moderate",
			NextStep:  "Check free T4 and consult a physician about thyroid function.",
		},
		LowMeans: &Interpretation{
			Condition: "Suppressed TSH (suggests overactive thyroid)",
			Causes:    []string{"Hyperthyroidism", "Graves' disease", "Excess thyroid hormone replacement"},
			Symptoms:  []string{"Palpitations", "Weight loss", "Heat intolerance", "Anxiety"},
			Severity:  "Moderate",
			NextStep:  "Check free T3 and T4; consult an endocrinologist.",
		},
	},
	{
		Name:     "T3",
		Category: "Thyroid Profile",
		Ranges: map[string]Range{
			"all": {Min: 80, Max: 200, Unit: "ng/dL"},
		},
		Explanation: "Total T3 measures the active thyroid hormone triiodothyronine.",
		HighMeans: &Interpretation{
			Condition: "Elevated T3",
			Causes:    []string{"Hyperthyroidism", "Excess thyroid hormone intake"},
			Symptoms:  []string{"Palpitations", "Tremor", "Weight loss"},
			Severity:  "Moderate",
			NextStep:  "Correlate with TSH; consult an endocrinologist.",
		},
		LowMeans: &Interpretation{
			Condition: "Low T3",
			Causes:    []string{"Hypothyroidism", "Non-thyroidal illness"},
			Symptoms:  []string{"Fatigue", "Cold intolerance"},
			Severity:  "Mild",
			NextStep:  "Correlate with TSH and free T4.",
		},
	},
	{
		Name:     "T4",
		Category: "Thyroid Profile",
		Ranges: map[string]Range{
			"all": {Min: 4.5, Max: 12.0, Unit: "µg/dL"},
		},
		Explanation: "Total T4 measures thyroxine, the main hormone produced by the thyroid.",
		HighMeans: &Interpretation{
			Condition: "Elevated T4",
			Causes:    []string{"Hyperthyroidism", "Thyroiditis", "Excess replacement dose"},
			Symptoms:  []string{"Palpitations", "Heat intolerance", "Weight loss"},
			Severity:  "Moderate",
			NextStep:  "Correlate with TSH; consult an endocrinologist.",
		},
		LowMeans: &Interpretation{
			Condition: "Low T4",
			Causes:    []string{"Hypothyroidism", "Pituitary dysfunction"},
			Symptoms:  []string{"Fatigue", "Weight gain", "Dry skin"},
			Severity:  "Moderate",
			NextStep:  "Correlate with TSH; thyroid replacement may be discussed.",
		},
	},
	{
		Name:     "Free T3",
		Category: "Thyroid Profile",
		Ranges: map[string]Range{
			"all": {Min: 2.3, Max: 4.2, Unit: "pg/mL"},
		},
		Explanation: "Free T3 measures the unbound, biologically active fraction of T3.",
		HighMeans: &Interpretation{
			Condition: "Elevated free T3",
			Causes:    []string{"Hyperthyroidism", "T3 toxicosis"},
			Symptoms:  []string{"Palpitations", "Anxiety", "Tremor"},
			Severity:  "Moderate",
			NextStep:  "Consult an endocrinologist.",
		},
		LowMeans: &Interpretation{
			Condition: "Low free T3",
			Causes:    []string{"Hypothyroidism", "Severe non-thyroidal illness"},
			Symptoms:  []string{"Fatigue", "Cold intolerance"},
			Severity:  "Mild",
			NextStep:  "Correlate with TSH and free T4.",
		},
	},
	{
		Name:     "Free T4",
		Category: "Thyroid Profile",
		Ranges: map[string]Range{
			"all": {Min: 0.8, Max: 1.8, Unit: "ng/dL"},
		},
		Explanation: "Free T4 measures the unbound, available fraction of thyroxine.",
		HighMeans: &Interpretation{
			Condition: "Elevated free T4",
			Causes:    []string{"Hyperthyroidism", "Excess replacement dose"},
			Symptoms:  []string{"Palpitations", "Weight loss", "Heat intolerance"},
			Severity:  "Moderate",
			NextStep:  "Consult an endocrinologist.",
		},
		LowMeans: &Interpretation{
			Condition: "Low free T4",
			Causes:    []string{"Hypothyroidism", "Pituitary dysfunction"},
			Symptoms:  []string{"Fatigue", "Weight gain"},
			Severity:  "Moderate",
			NextStep:  "Correlate with TSH; consult a physician.",
		},
	},
	{
		Name:     "ALT",
		Category: "Liver Function Test",
		Ranges: map[string]Range{
			"male":   {Min: 10, Max: 55, Unit: "U/L"},
			"female": {Min: 7, Max: 45, Unit: "U/L"},
		},
		Explanation: "ALT is a liver enzyme that leaks into blood when liver cells are injured.",
		HighMeans: &Interpretation{
			Condition: "Elevated ALT (liver cell injury)",
			Causes:    []string{"Fatty liver disease", "Viral hepatitis", "Alcohol", "Medication effect"},
			Symptoms:  []string{"Often none", "Fatigue", "Right upper abdominal discomfort"},
			Severity:  "Moderate",
			NextStep:  "Review alcohol and medications; physician follow-up with a full liver panel.",
		},
	},
	{
		Name:     "AST",
		Category: "Liver Function Test",
		Ranges: map[string]Range{
			"all": {Min: 8, Max: 48, Unit: "U/L"},
		},
		Explanation: "AST is an enzyme found in liver, heart and muscle tissue.",
		HighMeans: &Interpretation{
			Condition: "Elevated AST",
			Causes:    []string{"Liver injury", "Muscle damage", "Recent intense exercise", "Alcohol"},
			Symptoms:  []string{"Often none"},
			Severity:  "Moderate",
			NextStep:  "Interpret together with ALT; physician review if persistent.",
		},
	},
	{
		Name:     "ALP",
		Category: "Liver Function Test",
		Ranges: map[string]Range{
			"all": {Min: 44, Max: 147, Unit: "U/L"},
		},
		Explanation: "Alkaline phosphatase rises with bile duct obstruction and bone turnover.",
		HighMeans: &Interpretation{
			Condition: "Elevated ALP",
			Causes:    []string{"Bile duct obstruction", "Bone disease", "Pregnancy", "Growing children (normal)"},
			Symptoms:  []string{"Depends on cause", "Jaundice if biliary"},
			Severity:  "Moderate",
			NextStep:  "Physician review with GGT to localize the source.",
		},
	},
	{
		Name:     "Bilirubin",
		Category: "Liver Function Test",
		Ranges: map[string]Range{
			"all": {Min: 0.1, Max: 1.2, Unit: "mg/dL"},
		},
		Explanation: "Bilirubin is the breakdown product of hemoglobin cleared by the liver.",
		HighMeans: &Interpretation{
			Condition: "Hyperbilirubinemia",
			Causes:    []string{"Gilbert's syndrome", "Hemolysis", "Hepatitis", "Bile duct obstruction"},
			Symptoms:  []string{"Jaundice", "Dark urine", "Pale stools"},
			Severity:  "Moderate",
			NextStep:  "Physician review; fractionated bilirubin clarifies the cause.",
		},
	},
	{
		Name:     "Creatinine",
		Category: "Kidney Function Test",
		Ranges: map[string]Range{
			"male":   {Min: 0.74, Max: 1.35, Unit: "mg/dL"},
			"female": {Min: 0.59, Max: 1.04, Unit: "mg/dL"},
		},
		Explanation: "Creatinine is a muscle waste product cleared by the kidneys; it tracks kidney filtration.",
		HighMeans: &Interpretation{
			Condition: "Elevated creatinine (reduced kidney filtration)",
			Causes:    []string{"Dehydration", "Chronic kidney disease", "Certain medications", "High muscle mass"},
			Symptoms:  []string{"Often none early", "Swelling", "Fatigue", "Reduced urine output"},
			Severity:  "Moderate to High",
			NextStep:  "Seek physician review promptly; an eGFR calculation is needed.",
		},
		LowMeans: &Interpretation{
			Condition: "Low creatinine",
			Causes:    []string{"Low muscle mass", "Malnutrition", "Pregnancy"},
			Symptoms:  []string{"Usually none"},
			Severity:  "Mild",
			NextStep:  "Usually not significant; review nutrition if unexpected.",
		},
	},
	{
		Name:     "Urea",
		Category: "Kidney Function Test",
		Ranges: map[string]Range{
			"all": {Min: 7, Max: 20, Unit: "mg/dL"},
		},
		Explanation: "Blood urea nitrogen reflects protein metabolism and kidney clearance.",
		HighMeans: &Interpretation{
			Condition: "Elevated urea",
			Causes:    []string{"Dehydration", "High protein intake", "Kidney impairment", "Gastrointestinal bleeding"},
			Symptoms:  []string{"Often none", "Fatigue", "Nausea at high levels"},
			Severity:  "Moderate",
			NextStep:  "Interpret with creatinine; rehydrate and recheck.",
		},
		LowMeans: &Interpretation{
			Condition: "Low urea",
			Causes:    []string{"Low protein diet", "Liver disease", "Overhydration"},
			Symptoms:  []string{"Usually none"},
			Severity:  "Mild",
			NextStep:  "Usually not significant.",
		},
	},
	{
		Name:     "Uric Acid",
		Category: "Kidney Function Test",
		Ranges: map[string]Range{
			"male":   {Min: 3.4, Max: 7.0, Unit: "mg/dL"},
			"female": {Min: 2.4, Max: 6.0, Unit: "mg/dL"},
		},
		Explanation: "Uric acid is the end product of purine metabolism, excreted by the kidneys.",
		HighMeans: &Interpretation{
			Condition: "Hyperuricemia",
			Causes:    []string{"Purine-rich diet", "Alcohol", "Kidney impairment", "Diuretic use"},
			Symptoms:  []string{"Often none", "Gout attacks", "Kidney stones"},
			Severity:  "Moderate",
			NextStep:  "Reduce purine-rich foods and alcohol; physician review if gout symptoms.",
		},
	},
	{
		Name:     "Vitamin D",
		Category: "Vitamins",
		Ranges: map[string]Range{
			"all": {Min: 20, Max: 50, Unit: "ng/mL"},
		},
		Explanation: "25-hydroxy vitamin D reflects vitamin D stores for bone and immune health.",
		HighMeans: &Interpretation{
			Condition: "Elevated vitamin D",
			Causes:    []string{"Excess supplementation"},
			Symptoms:  []string{"Nausea", "Weakness", "Kidney stones at very high levels"},
			Severity:  "Mild",
			NextStep:  "Pause supplements and recheck in three months.",
		},
		LowMeans: &Interpretation{
			Condition: "Vitamin D deficiency",
			Causes:    []string{"Limited sun exposure", "Dark skin pigmentation", "Malabsorption", "Obesity"},
			Symptoms:  []string{"Bone pain", "Muscle weakness", "Fatigue", "Low mood"},
			Severity:  "Mild",
			NextStep:  "Sensible sun exposure and supplementation per physician advice.",
		},
	},
	{
		Name:     "Vitamin B12",
		Category: "Vitamins",
		Ranges: map[string]Range{
			"all": {Min: 190, Max: 950, Unit: "pg/mL"},
		},
		Explanation: "Vitamin B12 supports red blood cell formation and nerve function.",
		LowMeans: &Interpretation{
			Condition: "Vitamin B12 deficiency",
			Causes:    []string{"Vegetarian or vegan diet", "Pernicious anemia", "Malabsorption", "Metformin use"},
			Symptoms:  []string{"Fatigue", "Numbness or tingling", "Memory problems", "Sore tongue"},
			Severity:  "Moderate",
			NextStep:  "Supplementation per physician advice; investigate cause if severe.",
		},
		HighMeans: &Interpretation{
			Condition: "Elevated vitamin B12",
			Causes:    []string{"Supplementation", "Liver disease"},
			Symptoms:  []string{"Usually none"},
			Severity:  "Mild",
			NextStep:  "Usually not significant; review supplements.",
		},
	},
	{
		Name:     "Sodium",
		Category: "Electrolytes",
		Ranges: map[string]Range{
			"all": {Min: 135, Max: 145, Unit: "mEq/L"},
		},
		Explanation: "Sodium is the principal electrolyte governing fluid balance.",
		HighMeans: &Interpretation{
			Condition: "Hypernatremia",
			Causes:    []string{"Dehydration", "Diabetes insipidus", "Excess salt intake"},
			Symptoms:  []string{"Thirst", "Confusion", "Muscle twitching"},
			Severity:  "High",
			NextStep:  "Seek prompt medical attention; fluid correction must be supervised.",
		},
		LowMeans: &Interpretation{
			Condition: "Hyponatremia",
			Causes:    []string{"Excess water intake", "Diuretics", "SIADH", "Heart or kidney failure"},
			Symptoms:  []string{"Nausea", "Headache", "Confusion", "Seizures when severe"},
			Severity:  "High",
			NextStep:  "Seek prompt medical attention; severe hyponatremia is an emergency.",
		},
	},
	{
		Name:     "Potassium",
		Category: "Electrolytes",
		Ranges: map[string]Range{
			"all": {Min: 3.5, Max: 5.2, Unit: "mEq/L"},
		},
		Explanation: "Potassium is the key intracellular electrolyte for heart and muscle function.",
		HighMeans: &Interpretation{
			Condition: "Hyperkalemia",
			Causes:    []string{"Kidney impairment", "ACE inhibitor use", "Tissue breakdown", "Hemolyzed sample (artifact)"},
			Symptoms:  []string{"Muscle weakness", "Palpitations", "Cardiac arrhythmia"},
			Severity:  "High",
			NextStep:  "Seek urgent medical attention; repeat to exclude a hemolyzed sample.",
		},
		LowMeans: &Interpretation{
			Condition: "Hypokalemia",
			Causes:    []string{"Vomiting or diarrhea", "Diuretics", "Poor intake"},
			Symptoms:  []string{"Muscle cramps", "Weakness", "Palpitations"},
			Severity:  "High",
			NextStep:  "Seek prompt medical attention; cardiac monitoring may be needed.",
		},
	},
}
