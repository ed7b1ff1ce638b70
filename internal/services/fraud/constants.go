package fraud

// Detector weights
const (
	WeightBlacklistedIP      = 30
	WeightBlacklistedAccount = 40
	WeightOddHour            = 15
	WeightAmountAnomaly      = 20
	WeightGeographicDrift    = 25
)

// Detection thresholds
const (
	// FraudScoreThreshold marks a transaction fraudulent on total score
	// alone, independent of the any-detector rule.
	FraudScoreThreshold = 30

	// OddHourEnd is the last local hour considered odd, inclusive.
	// Hours 0 through 3 trigger; 4 AM does not.
	OddHourEnd = 3

	// ZScoreThreshold is the absolute z-score above which an amount is
	// anomalous against the account's baseline.
	ZScoreThreshold = 2.0

	// DriftThresholdKm is the distance from the last known location above
	// which the drift detector triggers.
	DriftThresholdKm = 500.0

	// MinBaselineCount is the smallest history size with a defined
	// standard deviation.
	MinBaselineCount = 2
)

// Detector names, used for metrics labels and the evaluation order.
const (
	DetectorBlacklistedIP      = "blacklisted_ip"
	DetectorBlacklistedAccount = "blacklisted_account"
	DetectorOddHour            = "odd_hour"
	DetectorAmountAnomaly      = "amount_anomaly"
	DetectorGeographicDrift    = "geographic_drift"
)

// Reason strings reported to callers.
const (
	ReasonBlacklistedIP      = "Blacklisted IP address"
	ReasonBlacklistedAccount = "Blacklisted recipient account"
	ReasonOddHours           = "Transaction at odd hours (12 AM - 4 AM)"
	ReasonAmountAnomalyFmt   = "Abnormal transaction amount (z-score: %.2f)"
	ReasonGeographicDrift    = "Geographic drift detected (>500km from last location)"

	// FeedbackReason annotates blacklist entries created by the feedback
	// loop after a fraudulent verdict.
	FeedbackReason = "Fraudulent transaction detected"
)
