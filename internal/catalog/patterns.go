package catalog

// Shared pattern fragments
const (
	pct   = `(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`
	money = `(?P<amt>(?:₹|Rs\.?|INR)?\s*[0-9,]+(?:\.[0-9]+)?\s*(?:L|Lakh|Lac|Crore|Cr|K|Thousand)?)`
)

// defaultPatterns covers the priority MITC sections: fees and charges,
// prepayment/foreclosure, LTV, eligibility, tenure, interest reset and
// communication, required documents, grievance, penal charges, and
// security/insurance. Patterns per key are ordered from bank-specific
// phrasings (HDFC, ICICI, SBI) to general fallbacks; the extractor stops at
// the first match.
var defaultPatterns = []Entry{
	{Key: "fees_and_charges.processing_fee", Patterns: []string{
		`(?i)Processing\s+Fees?\s+At\s+Once\s+Upto\s+(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)Login\s*Fee[/\\]Processing\s*Fee\s+(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*to\s*(?P<pct2>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)processing[^.]{0,50}fee[^.]{0,50}(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)(?:up\s*to|upto)\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*of\s*(?:the\s*)?loan\s*amount\s*or\s*(?:Rs\.?|₹)\s*(?P<amt>[0-9,]+)\s*whichever\s*is\s*(?P<which>higher|lower)`,
		`(?i)(?:up\s*to|upto)\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*of\s*(?:the\s*)?loan\s*amount\s*or\s*(?:Rs\.?|₹)\s*(?P<amt>[0-9,]+)`,
		`(?i)Processing\s*Fees?\s*[:\-]?\s*` + pct,
	}},
	{Key: "fees_and_charges.administrative_fee", Patterns: []string{
		`(?i)administrative\s+fee[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)admin\s+fee[:\s]*(?:₹|Rs\.? )\s*(?P<amt>[0-9,]+)`,
		`(?i)administrative\s*charges?[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)administrative\s*charges?[:\s]*(?:₹|Rs\.?|INR)\s*(?P<amt>[0-9,]+)`,
		`(?i)administrative.*?fee[:\s]*(?P<value>Template field.*?not specified)`,
		`(?i)administrative.*?fee[:\s]*(?P<value>___+)`,
		`(?i)administrative.*?fee[:\s]*(?P<value>\[.*?\])`,
		`(?i)incidental\s*charges\s*and\s*expenses.*?as\s*per\s*actuals`,
	}},
	{Key: "fees_and_charges.legal_charges", Patterns: []string{
		`(?i)legal\s+charges[:\s]*(?:₹|Rs\.? )\s*(?P<amt>[0-9,]+)`,
		`(?i)legal\s+fee[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)legal\s+charges?[:\s]*(?P<value>as\s*per\s*(?:actuals|applicable\s*law))`,
		`(?i)legal\s*charges?\s*[:\-]\s*as\s*per\s*actuals`,
	}},
	{Key: "fees_and_charges.valuation_charges", Patterns: []string{
		`(?i)valuation\s+charges?[:\s]*(?:₹|Rs\.?|INR)\s*(?P<amt>[0-9,]+)`,
		`(?i)valuation\s+fees?[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)valuation\s+charges?[:\s]*(?P<value>as\s*per\s*(?:actuals|applicable\s*law))`,
		`(?i)valuation\s*charges?\s*[:\-]\s*as\s*per\s*actuals`,
	}},
	{Key: "fees_and_charges.conversion_fee", Patterns: []string{
		`(?i)(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*of\s*the\s*Principal\s+Outstanding`,
	}},
	{Key: "prepayment_and_foreclosure.prepayment_penalty", Patterns: []string{
		`(?i)prepayment\s+penalty[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)prepay\s+up\s+to\s+(?P<pct>[0-9]+)\s*%\s*of\s*the.*principal`,
		`(?i)prepayment.*?penalty[:\s]*(?P<value>NIL|N\.A\.)`,
		`(?i)(?P<value>[Nn]o\s+pre-?payment\s+penalty.*?floating.*?loans?)`,
		`(?i)(?P<value>[Nn]o\s+penalty.*?levied.*?floating.*?home\s+loans?)`,
		`(?i)prepayment.*?(?P<value>not\s+applicable|N/A)`,
	}},
	{Key: "prepayment_and_foreclosure.foreclosure_charges", Patterns: []string{
		`(?i)foreclosure\s+charges?[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)pre.?closure\s+charges?[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)foreclosure.*?charges?[:\s]*(?P<value>NIL|N\.A\.)`,
		`(?i)(?P<value>[Nn]o\s+pre-?closure\s+penalty.*?floating.*?loans?)`,
		`(?i)(?P<value>[Nn]o\s+penalty.*?levied.*?floating.*?home\s+loans?)`,
		`(?i)pre.?closure.*?(?P<value>not\s+applicable|N/A)`,
		`(?i)foreclosure\s*charges?\s*[:\-]?\s*NIL\s*for\s*floating\s*rate\s*housing\s*loan`,
	}},
	{Key: "loan_amount_and_ltv.ltv_ratio", Patterns: []string{
		`(?i)LTV[:\s]*(?:up\s+to\s+)?(?P<pct>[0-9]+)\s*%`,
		`(?i)loan\s+to\s+value[:\s]*(?P<pct>[0-9]+)\s*%`,
		`(?i)(?P<pct>[0-9]+)\s*%.*LTV`,
	}},
	{Key: "eligibility.minimum_income", Patterns: []string{
		`(?i)minimum\s+income[:\s]*(?:₹|Rs\.?)\s*(?P<amt>[0-9,]+)`,
		`(?i)income\s+requirement[:\s]*(?:₹|Rs\.?)\s*(?P<amt>[0-9,]+)`,
	}},
	{Key: "eligibility.cibil_score", Patterns: []string{
		`(?i)CIBIL\s+score[:\s]*(?P<score>[0-9]+)`,
		`(?i)credit\s+score[:\s]*(?P<score>[0-9]+)`,
		`(?i)minimum.*score[:\s]*(?P<score>[0-9]+)`,
	}},
	{Key: "eligibility.age_limit", Patterns: []string{
		`(?i)age\s+limit[:\s]*(?P<min_age>[0-9]+)(?:\s*to\s*(?P<max_age>[0-9]+))?\s*years?`,
		`(?i)minimum\s+age[:\s]*(?P<min_age>[0-9]+)\s*years?`,
		`(?i)maximum\s+age[:\s]*(?P<max_age>[0-9]+)\s*years?`,
		`(?i)age\s*of\s*borrower[:\s]*(?P<min_age>[0-9]+)\s*[-–to]\s*(?P<max_age>[0-9]+)\s*years?`,
	}},
	{Key: "repayment.tenure", Patterns: []string{
		`(?i)loan\s*tenure\s*[:\-]?\s*(?P<years>[0-9]+)\s*(?:years?|yrs?|months?)`,
		`(?i)tenure\s*[:\-]?\s*(?P<years>[0-9]+)\s*(?:years?|yrs?|months?)`,
		`(?i)term\s*[:\-]?\s*(?P<years>[0-9]+)\s*(?:years?|yrs?|months?)`,
		`(?i)repayment\s*period\s*[:\-]?\s*(?P<years>[0-9]+)\s*(?:years?|yrs?)`,
	}},
	{Key: "repayment.tenure_range", Patterns: []string{
		`(?i)(?P<min_years>[0-9]+)(?:\s*to\s*|\s*-\s*)(?P<max_years>[0-9]+)\s*(?:years?|yrs?)`,
		`(?i)(?P<min_years>[0-9]+)\s*[–\-]\s*(?P<max_years>[0-9]+)\s*(?:years?|yrs?)`,
	}},
	{Key: "interest_rates.reset_frequency", Patterns: []string{
		`(?i)reset\s*(?:period|frequency)\s*[:\-]?\s*(?P<freq>monthly|quarterly|annually|yearly)`,
		`(?i)rate\s*change\s*[:\-]?\s*(?P<freq>monthly|quarterly|annually|yearly)`,
	}},
	{Key: "interest_rates.benchmark_rate", Patterns: []string{
		`(?i)(?P<bench>RPLR|IHPLR|EBLR|REPO)\s*(?:linked|rate)?`,
		`(?i)Retail\s*Prime\s*Lending\s*Rate\s*\((?P<bench>RPLR)\)`,
		`(?i)(?P<bench>IHPLR)\s*=\s*[0-9\.]*\s*%\s*per\s*annum`,
	}},
	{Key: "interest_rates.rate_change_communication", Patterns: []string{
		`(?i)(?P<value>HDFC.*?endeavor.*?informed.*?change.*?rates?[^.]*)`,
		`(?i)(?P<value>[Aa]ny\s+changes.*?interest\s+rate.*?detailed.*?[Cc]lause.*?[0-9]+.*?website[^.]*)`,
		`(?i)(?P<value>[Cc]hanges.*?REPO\s+rate.*?notified.*?displayed.*?branch[^.]+[^.]+)`,
		`(?i)(?P<value>[Aa]\s+communication.*?borrower.*?registered.*?e-mail.*?SMS[^.]*)`,
		`(?i)(?P<value>borrowers?.*?informed.*?(?:change|rate)[^.]*)`,
		`(?i)(?P<value>shall.*?keep.*?informed.*?change.*?rate[^.]*)`,
		`(?i)changes\s*in\s*the\s*adjustable\s*interest\s*rate\s*will\s*be\s*as\s*detailed\s*in\s*Clause\s*4`,
	}},
	{Key: "interest_rates.notification_method", Patterns: []string{
		`(?i)'?press\s+release'?.*?(?P<method>www\.[^\s]+)`,
		`(?i)notice\s+board.*?(?P<methods>[^.]{20,80})`,
		`(?i)(?P<methods>(?:website|email|sms|branch).*?(?:notification|communication)[^.]*)`,
		`(?i)(?P<value>detailed.*?[Cc]lause.*?[0-9]+)`,
		`(?i)notification.*method[:\s]*(?P<method>[\w\s,]+)`,
	}},
	{Key: "documents.required_documents", Patterns: []string{
		`(?i)documents?\s+required[:\s]*(?P<docs>[\w\s,]+)`,
		`(?i)KYC\s+documents[:\s]*(?P<docs>[\w\s,]+)`,
		`(?i)property.*documents[:\s]*(?P<docs>[\w\s,]+)`,
		`(?i)(?:list\s+of\s+documents|supporting\s+proofs?)[:\s]*(?P<docs>.+)`,
		`(?i)(?:required|mandatory)\s+documents?[:\s]*(?P<docs>.+)`,
		`(?i)welcome\s+pack[:\s]*(?P<docs>.+)`,
		`(?i)supporting\s+proofs?[:\s]*(?P<docs>.+)`,
		`(?i)will\s*be\s*released\s*to\s*you\s*within\s*30\s*days\s*from\s*the\s*date\s*of\s*full\s*repayment`,
		`(?i)\bmiscellaneous\b`,
	}},
	{Key: "grievance.process", Patterns: []string{
		`(?i)grievance\s+(?:process|procedure|redressal)[:\s]*(?P<process>[\w\s,]+)`,
		`(?i)complaint\s+procedure[:\s]*(?P<process>[\w\s,]+)`,
		`(?i)customer\s+service[:\s]*(?P<process>[\w\s,]+)`,
	}},
	{Key: "grievance.customer_service", Patterns: []string{
		`(?i)(?:nodal\s+officer|escalation\s+matrix?)[:\s]*(?P<contact>.+)`,
		`(?i)nodal\s+officer\s+contact[:\s]*(?P<contact>.+)`,
		`(?i)nhb\s+escalation[:\s]*(?P<contact>.+)`,
		`(?i)(?:NHB|national\s+housing\s+bank)\s+grievance`,
	}},
	{Key: "loan_amount_and_ltv.sanctioned_amount", Patterns: []string{
		`(?i)sanctioned\s*amount\s*[:\-]?\s*` + money,
		`(?i)loan\s*amount\s*[:\-]?\s*(?:up\s*to|maximum|upto)?\s*` + money,
		`(?i)principal\s*amount\s*(?:of\s*the\s*)?(?:facility|loan)\s*[:\-]?\s*` + money,
		"(?i)facility\\s*amount\\s*(?:not\\s*exceeding)?\\s*[:\\-\\(]?\\s*[\x60₹Rs\\.]?\\s*[0-9,]+",
		`(?i)opening\s*principal\s*amount`,
	}},
	{Key: "loan_amount_and_ltv.loan_amount_currency", Patterns: []string{
		`(?i)currency\s*[:\-]?\s*(INR|₹|Rupees?)`,
		"(?i)[\x60₹]\\s*[0-9,]+",
		`(?i)Rupees\s+[A-Za-z\s]+Only`,
	}},
	{Key: "repayment.emi_amount", Patterns: []string{
		`(?i)(?:the\s*)?amount\s*of\s*EMI\s*[:\-]?\s*(?:₹|Rs\.?|INR)\s*[0-9,]+(?:\.[0-9]+)?`,
		"(?i)EMI\\s*\\(?[\x60₹Rs\\.]?\\)?\\s*[:\\-]?\\s*(?:₹|Rs\\.?|INR)\\s*[0-9,]+",
		`(?i)(?:equated\s*)?monthly\s*installment\s*[:\-]?\s*(?:₹|Rs\.?|INR)\s*[0-9,]+(?:\.[0-9]+)?`,
	}},
	{Key: "repayment.emi_currency", Patterns: []string{
		"(?i)EMI\\s*\\([\x60₹Rs\\.]*\\)",
	}},
	{Key: "prepayment_and_foreclosure.prepayment_option", Patterns: []string{
		`(?i)prepay\s*up\s*to\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*of\s*the\s*(?:opening\s*)?principal`,
		`(?i)partial\s*prepayment\s*[:\-]?\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
	}},
	{Key: "interest_rates.margin", Patterns: []string{
		`(?i)(?:RPLR|IHPLR|EBLR)\s*[+\-]\s*(?P<pct>[0-9\.]+)\s*%`,
		`(?i)margin\s*of\s*[+\-]?\s*(?P<pct>[0-9\.]+)\s*%`,
	}},
	{Key: "penal_charges.late_payment_penalty", Patterns: []string{
		`(?i)penal interest\s*@\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*p\.a\.`,
		`(?i)penal.*?interest.*?@\s*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%(?:\s*(?:p\.a\.|per\s+annum))?`,
		`(?i)late payment charge[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*p\.a\.`,
		`(?i)default interest rate[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*over`,
		`(?i)penal interest[:\s]*(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%`,
		`(?i)(?:a\s*)?maximum\s*(?:of\s*)?(?P<pct>[0-9]+(?:\.[0-9]+)?)\s*%\s*(?:p\.?a\.?|per\s+annum)\s*on\s*the\s*defaulted\s*(?:sum|amount)`,
		`(?i)bounce charge[:\s]*(?:₹|Rs\.?|INR)\s*(?P<amt>[0-9,]+)`,
	}},
	{Key: "penal_charges.cheque_bounce_charges", Patterns: []string{
		"(?i)cheque[/\\\\]?(?:ECS|NACH|payment\\s*instrument)?\\s*dishono?ur\\s*charges[:\\-,]*\\s*per\\s*transaction\\s*[\x60₹Rs\\.]*\\s*(?P<amt>[0-9,]+)",
		"(?i)bounce\\s*(?:charge|penalty)\\s*[:\\-]?\\s*[\x60₹Rs\\.]*\\s*(?P<amt>[0-9,]+)",
	}},
	{Key: "document_info.bank_name", Patterns: []string{
		`(?i)\b(?P<bank>HDFC|ICICI|SBI|DBS)\b`,
	}},
	{Key: "fees_and_charges.fee_amount", Patterns: []string{
		`(?i)(?:₹|Rs\.?)\s*(?P<amt>[0-9,]+)`,
	}},
	{Key: "interest_rates.benchmark", Patterns: []string{
		`(?i)(RPLR|IHPLR|EBLR|REPO)\s*(?:linked|rate)?`,
	}},
	{Key: "interest_rates.spread", Patterns: []string{
		`(?i)(spread|margin)\s*(?:over)?\s*(RPLR|IHPLR|EBLR|REPO)?\s*[:\-]?\s*` + pct,
	}},
	{Key: "prepayment_and_foreclosure.charge", Patterns: []string{
		`(?i)(prepayment|pre\-?closure|foreclosure)\s*(?:charge|penalt(y|ies))\s*[:\-]?\s*` + pct,
	}},
	{Key: "repayment.tenure_years", Patterns: []string{
		`(?i)(tenure|term)\s*(?:up to|upto|maximum|:)?\s*(?P<years>[0-9]{1,2})\s*(?:years|yrs)`,
	}},
	{Key: "eligibility.credit_score_min", Patterns: []string{
		`(?i)(CIBIL|credit\s*score)\s*(?:min(?:imum)?|>=|≥|not\s*less\s*than)?\s*(?P<score>[0-9]{3})`,
	}},
	{Key: "document_metadata.effective_date", Patterns: []string{
		`(?i)(Effective\s*from|Updated\s*on|Version\s*dated|Revised\s*on)\s*[:\-]?\s*(?P<date>[0-9]{1,2}[\-/][0-9]{1,2}[\-/][0-9]{2,4})`,
		`(?i)(Effective\s*from|Updated\s*on|Version\s*dated|Revised\s*on)\s*[:\-]?\s*(?P<date>[A-Za-z]{3,9}\s+[0-9]{1,2},\s*[0-9]{4})`,
	}},
	{Key: "loan_amount_and_ltv.ltv_tier", Patterns: []string{
		`(?i)loan-to-value ratio[:\s]*up to\s*(?P<pct>[0-9]+)%\s*for loans up to`,
		`(?i)LTV[:\s]*up to\s*(?P<pct>[0-9]+)%\s*for loans up to`,
		`(?i)maximum LTV[:\s]*(?P<pct>[0-9]+)%\s*for loans up to`,
		`(?i)(?P<pct>[0-9]+)%\s*-\s*up to\s*₹?\s*[0-9,]+`,
		`(?i)LTV[:\s]*(?P<pct>[0-9]+)%`,
		`(?i)Loan[-\s]*to[-\s]*Value.*?Up\s*to\s*(?P<pct>[0-9]{1,3})%.*?(?:₹|Rs\.?|INR)\s*(?P<amt>[0-9,]+)\s*(?P<unit>L|Lakh|Lac|Crore|Cr|K|Thousand)?`,
		`(?i)LTV.*?Up\s*to\s*(?P<pct>[0-9]{1,3})%.*?(?:₹|Rs\.?|INR)\s*(?P<amt>[0-9,]+)\s*(?P<unit>L|Lakh|Lac|Crore|Cr|K|Thousand)?`,
	}},
	{Key: "fees_and_charges.compound_processing_fee", Patterns: []string{
		`(?i)(?P<pct>[0-9]+(?:\.[0-9]+)?)%\s*or\s*(?:Rs\.?|₹)\s*(?P<amt>[0-9,]+)\s*whichever is higher`,
		`(?i)(?P<pct>[0-9]+(?:\.[0-9]+)?)%\s*or\s*(?:Rs\.?|₹)\s*(?P<amt>[0-9,]+)\s*whichever is lower`,
		`(?i)(?P<pct>[0-9]+(?:\.[0-9]+)?)%\s*or\s*(?:Rs\.?|₹)\s*(?P<amt>[0-9,]+)`,
	}},
	{Key: "security_and_insurance.insurance_requirement", Patterns: []string{
		`(?i)insurance coverage[:\s]*(?:₹|Rs\.?)\s*(?P<amt>[0-9,]+)\s*(?:lakhs?|lac?)\s*minimum`,
		`(?i)life insurance[:\s]*(?P<value>mandatory|compulsory|required)`,
		`(?i)property insurance[:\s]*(?P<value>as per bank's requirement|mandatory)`,
		`(?i)insurance.*?₹?\s*(?P<amt>[0-9,]+)\s*L(?:akh|ac)?\s*(?:minimum|min)?`,
	}},
	{Key: "security_and_insurance.primary_security", Patterns: []string{
		`(?i)primary\s*security[:\s]*(?P<value>property\s*mortgage|equitable\s*mortgage)`,
		`(?i)security[:\s]*(?P<value>equitable\s*mortgage|charge\s*on\s*property|hypothecation)`,
		`(?i)security\s*interest[:\s]*(?P<value>[^\n\r]{5,120})`,
		`(?i)security\s*of\s*the\s*loan.*?(?P<value>security\s*interest\s*on\s*the\s*property\s*being\s*financed)`,
		`(?i)(?P<value>equitable\s+mortgage\s+of\s+the\s+property)`,
	}},
	{Key: "eligibility.special_categories", Patterns: []string{
		`(?i)NRI[:\s]*(?P<value>eligible|not eligible)`,
		`(?i)defense personnel[:\s]*(?P<value>special rates|eligible)`,
		`(?i)government employees[:\s]*(?P<value>concessional rates|special rates)`,
	}},
	{Key: "prepayment_and_foreclosure.lock_in_period", Patterns: []string{
		`(?i)lock[-\s]*in\s*period\s*[:\-]?\s*6\s*months\s*for\s*non[-\s]*individual\s*borrowers`,
	}},
}
