package i18n

// catalog holds the full string tables. Keys are dot-namespaced by surface.
// Bangla entries were reviewed with the field team; keep %s/%d verbs aligned
// with the English strings when editing.
var catalog = map[Lang]map[string]string{
	English: {
		"app.title":   "MatriCheck",
		"app.tagline": "Maternal risk screening",

		"nav.form":      "Assessment",
		"nav.history":   "History",
		"nav.dashboard": "Dashboard",
		"nav.about":     "About",

		"form.title":           "Patient Assessment",
		"form.patient_id":      "Patient ID",
		"form.patient_id_hint": "auto",
		"form.health_worker":   "Health worker",
		"form.age":             "Age (years)",
		"form.weight":          "Weight (kg)",
		"form.height":          "Height (cm)",
		"form.systolic":        "Systolic BP (mmHg)",
		"form.diastolic":       "Diastolic BP (mmHg)",
		"form.blood_sugar":     "Blood sugar (mmol/L)",
		"form.hemoglobin":      "Hemoglobin (g/dL)",
		"form.lab_available":   "Lab results available",
		"form.yes":             "Yes",
		"form.no":              "No",
		"form.bmi":             "BMI",

		"bmi.underweight": "Underweight",
		"bmi.normal":      "Normal",
		"bmi.overweight":  "Overweight",
		"bmi.obese":       "Obese",

		"risk.low":      "Low Risk",
		"risk.moderate": "Moderate Risk",
		"risk.high":     "High Risk",

		"action.assess":   "assess",
		"action.save":     "save",
		"action.report":   "report",
		"action.new":      "new",
		"action.language": "language",
		"action.quit":     "quit",
		"action.views":    "switch view",
		"action.fields":   "move between fields",
		"action.toggle":   "toggle",
		"action.scroll":   "scroll",

		"status.ready":           "Ready",
		"status.connecting":      "Connecting to bridge...",
		"status.connected":       "Bridge connected",
		"status.assessing":       "Assessing risk...",
		"status.saving":          "Saving assessment...",
		"status.generating":      "Generating report...",
		"status.saved":           "Assessment saved for %s",
		"status.report_ready":    "Report ready: %s",
		"status.loading_history": "Loading history...",
		"status.loading_stats":   "Loading dashboard...",
		"status.new":             "New assessment started",
		"status.language":        "Language: %s",

		"err.bridge_down":      "Bridge unavailable; start matricheckd or check bridge.url",
		"err.no_result_save":   "Nothing to save: run an assessment first",
		"err.no_result_report": "No assessment to report: run an assessment first",
		"err.assess_failed":    "Assessment failed: %s",
		"err.save_failed":      "Save failed: %s",
		"err.report_failed":    "Report failed: %s",
		"err.history_failed":   "Could not load history: %s",
		"err.stats_failed":     "Could not load dashboard: %s",
		"err.contract":         "Bridge returned an unusable response (%s); see log for details",

		"result.title":         "Assessment Result",
		"result.empty":         "No assessment yet. Fill the form and press enter.",
		"result.confidence":    "Confidence",
		"result.probabilities": "Probabilities",
		"result.model":         "Model",
		"result.lab_used":      "Lab data",

		"rec.low.title":    "Routine care",
		"rec.low.a1":       "Continue standard antenatal check-ups",
		"rec.low.a2":       "Maintain balanced nutrition and iron intake",
		"rec.low.a3":       "Re-screen at the next scheduled visit",
		"rec.low.note":     "No referral needed at this time.",
		"rec.moderate.title": "Increased monitoring",
		"rec.moderate.a1":  "Schedule a follow-up within two weeks",
		"rec.moderate.a2":  "Monitor blood pressure twice weekly",
		"rec.moderate.a3":  "Review diet and rest with the patient",
		"rec.moderate.note": "Refer if symptoms worsen before follow-up.",
		"rec.high.title":   "Urgent referral",
		"rec.high.a1":      "Refer to the nearest facility with obstetric care",
		"rec.high.a2":      "Arrange transport and accompany if possible",
		"rec.high.a3":      "Share this assessment with the receiving clinician",
		"rec.high.note":    "Do not wait for the next scheduled visit.",

		"history.title":       "Assessment History",
		"history.empty":       "No assessments recorded",
		"history.col.time":    "Recorded",
		"history.col.patient": "Patient",
		"history.col.age":     "Age",
		"history.col.bmi":     "BMI",
		"history.col.bp":      "BP",
		"history.col.risk":    "Risk",
		"history.col.conf":    "Conf",

		"dash.title":        "Screening Dashboard",
		"dash.distribution": "Risk distribution",
		"dash.trend":        "Assessments this week",
		"dash.factors":      "Top risk factors",
		"dash.total":        "%d total",
		"dash.no_data":      "no data",

		"about.title":       "About MatriCheck",
		"about.desc":        "MatriCheck screens pregnant women for complication risk using routine measurements, with or without lab results. Assessments are scored by the bridge service and stored for follow-up.",
		"about.models":      "Scoring models",
		"about.full_model":  "Full model: BP, blood sugar, hemoglobin, BMI, age",
		"about.basic_model": "Basic model: BP and age only, for visits without lab work",
		"about.weights":     "Feature weights",

		"factor.high_systolic":    "High systolic BP",
		"factor.high_diastolic":   "High diastolic BP",
		"factor.high_sugar":       "Elevated blood sugar",
		"factor.low_hemoglobin":   "Low hemoglobin",
		"factor.bmi_out_of_range": "BMI out of range",
		"factor.age_extreme":      "Age under 18 or over 35",
	},

	Bangla: {
		"app.title":   "MatriCheck",
		"app.tagline": "মাতৃত্বকালীন ঝুঁকি পরীক্ষা",

		"nav.form":      "নিরূপণ",
		"nav.history":   "ইতিহাস",
		"nav.dashboard": "ড্যাশবোর্ড",
		"nav.about":     "পরিচিতি",

		"form.title":           "রোগীর ঝুঁকি নিরূপণ",
		"form.patient_id":      "রোগীর আইডি",
		"form.patient_id_hint": "auto",
		"form.health_worker":   "স্বাস্থ্যকর্মী",
		"form.age":             "বয়স (বছর)",
		"form.weight":          "ওজন (কেজি)",
		"form.height":          "উচ্চতা (সেমি)",
		"form.systolic":        "সিস্টোলিক চাপ (mmHg)",
		"form.diastolic":       "ডায়াস্টোলিক চাপ (mmHg)",
		"form.blood_sugar":     "রক্তের শর্করা (mmol/L)",
		"form.hemoglobin":      "হিমোগ্লোবিন (g/dL)",
		"form.lab_available":   "ল্যাব রিপোর্ট আছে",
		"form.yes":             "হ্যাঁ",
		"form.no":              "না",
		"form.bmi":             "বিএমআই",

		"bmi.underweight": "কম ওজন",
		"bmi.normal":      "স্বাভাবিক",
		"bmi.overweight":  "অতিরিক্ত ওজন",
		"bmi.obese":       "স্থূলতা",

		"risk.low":      "কম ঝুঁকি",
		"risk.moderate": "মাঝারি ঝুঁকি",
		"risk.high":     "উচ্চ ঝুঁকি",

		"action.assess":   "নিরূপণ",
		"action.save":     "সংরক্ষণ",
		"action.report":   "রিপোর্ট",
		"action.new":      "নতুন",
		"action.language": "ভাষা",
		"action.quit":     "বন্ধ",
		"action.views":    "ভিউ পরিবর্তন",
		"action.fields":   "ঘর পরিবর্তন",
		"action.toggle":   "টগল",
		"action.scroll":   "স্ক্রল",

		"status.ready":           "প্রস্তুত",
		"status.connecting":      "ব্রিজে সংযোগ হচ্ছে...",
		"status.connected":       "ব্রিজ সংযুক্ত",
		"status.assessing":       "ঝুঁকি নিরূপণ চলছে...",
		"status.saving":          "সংরক্ষণ হচ্ছে...",
		"status.generating":      "রিপোর্ট তৈরি হচ্ছে...",
		"status.saved":           "%s-এর নিরূপণ সংরক্ষিত হয়েছে",
		"status.report_ready":    "রিপোর্ট প্রস্তুত: %s",
		"status.loading_history": "ইতিহাস লোড হচ্ছে...",
		"status.loading_stats":   "ড্যাশবোর্ড লোড হচ্ছে...",
		"status.new":             "নতুন নিরূপণ শুরু হয়েছে",
		"status.language":        "ভাষা: %s",

		"err.bridge_down":      "ব্রিজ পাওয়া যাচ্ছে না; matricheckd চালু করুন",
		"err.no_result_save":   "সংরক্ষণের কিছু নেই: আগে নিরূপণ করুন",
		"err.no_result_report": "রিপোর্টের জন্য কোনো নিরূপণ নেই",
		"err.assess_failed":    "নিরূপণ ব্যর্থ: %s",
		"err.save_failed":      "সংরক্ষণ ব্যর্থ: %s",
		"err.report_failed":    "রিপোর্ট ব্যর্থ: %s",
		"err.history_failed":   "ইতিহাস লোড করা যায়নি: %s",
		"err.stats_failed":     "ড্যাশবোর্ড লোড করা যায়নি: %s",
		"err.contract":         "ব্রিজ থেকে অগ্রহণযোগ্য উত্তর (%s); বিস্তারিত লগে",

		"result.title":         "নিরূপণের ফলাফল",
		"result.empty":         "এখনো কোনো নিরূপণ নেই। ফর্ম পূরণ করে enter চাপুন।",
		"result.confidence":    "নিশ্চয়তা",
		"result.probabilities": "সম্ভাবনা",
		"result.model":         "মডেল",
		"result.lab_used":      "ল্যাব তথ্য",

		"rec.low.title":    "নিয়মিত সেবা",
		"rec.low.a1":       "নিয়মিত প্রসবপূর্ব চেক-আপ চালিয়ে যান",
		"rec.low.a2":       "সুষম খাবার ও আয়রন গ্রহণ বজায় রাখুন",
		"rec.low.a3":       "পরবর্তী নির্ধারিত ভিজিটে আবার পরীক্ষা করুন",
		"rec.low.note":     "এখন রেফারের প্রয়োজন নেই।",
		"rec.moderate.title": "বাড়তি পর্যবেক্ষণ",
		"rec.moderate.a1":  "দুই সপ্তাহের মধ্যে ফলো-আপ দিন",
		"rec.moderate.a2":  "সপ্তাহে দুইবার রক্তচাপ মাপুন",
		"rec.moderate.a3":  "খাবার ও বিশ্রাম নিয়ে পরামর্শ দিন",
		"rec.moderate.note": "অবস্থা খারাপ হলে আগেই রেফার করুন।",
		"rec.high.title":   "জরুরি রেফার",
		"rec.high.a1":      "নিকটস্থ প্রসূতি সেবা কেন্দ্রে রেফার করুন",
		"rec.high.a2":      "যাতায়াতের ব্যবস্থা করুন, সম্ভব হলে সঙ্গে যান",
		"rec.high.a3":      "এই নিরূপণটি চিকিৎসকের সাথে শেয়ার করুন",
		"rec.high.note":    "পরবর্তী ভিজিটের জন্য অপেক্ষা করবেন না।",

		"history.title":       "নিরূপণের ইতিহাস",
		"history.empty":       "কোনো নিরূপণ সংরক্ষিত নেই",
		"history.col.time":    "সময়",
		"history.col.patient": "রোগী",
		"history.col.age":     "বয়স",
		"history.col.bmi":     "বিএমআই",
		"history.col.bp":      "রক্তচাপ",
		"history.col.risk":    "ঝুঁকি",
		"history.col.conf":    "নিশ্চয়তা",

		"dash.title":        "পরীক্ষার ড্যাশবোর্ড",
		"dash.distribution": "ঝুঁকির বণ্টন",
		"dash.trend":        "এই সপ্তাহের নিরূপণ",
		"dash.factors":      "প্রধান ঝুঁকির কারণ",
		"dash.total":        "মোট %d",
		"dash.no_data":      "তথ্য নেই",

		"about.title":       "MatriCheck পরিচিতি",
		"about.desc":        "MatriCheck নিয়মিত মাপ দিয়ে গর্ভবতী মায়েদের জটিলতার ঝুঁকি পরীক্ষা করে, ল্যাব রিপোর্ট থাকুক বা না থাকুক। নিরূপণ ব্রিজ সার্ভিসে স্কোর হয় এবং ফলো-আপের জন্য সংরক্ষিত থাকে।",
		"about.models":      "স্কোরিং মডেল",
		"about.full_model":  "পূর্ণ মডেল: রক্তচাপ, শর্করা, হিমোগ্লোবিন, বিএমআই, বয়স",
		"about.basic_model": "সাধারণ মডেল: শুধু রক্তচাপ ও বয়স, ল্যাব ছাড়া ভিজিটের জন্য",
		"about.weights":     "ফিচারের গুরুত্ব",

		"factor.high_systolic":    "উচ্চ সিস্টোলিক চাপ",
		"factor.high_diastolic":   "উচ্চ ডায়াস্টোলিক চাপ",
		"factor.high_sugar":       "বাড়তি রক্তের শর্করা",
		"factor.low_hemoglobin":   "কম হিমোগ্লোবিন",
		"factor.bmi_out_of_range": "বিএমআই সীমার বাইরে",
		"factor.age_extreme":      "বয়স ১৮-এর নিচে বা ৩৫-এর বেশি",
	},
}
