package adapter

// chain is the ordered list of source keys for one legacy field. The first key
// holding a truthy value wins; the canonical legacy name always comes first.
type chain []string

var (
	idKeys               = chain{"_id", "id"}
	vehicleIDKeys        = chain{"vehicleId", "truckId"}
	addedByKeys          = chain{"addedBy", "userId"}
	dateKeys             = chain{"date", "createdAt"}
	costKeys             = chain{"cost", "amount"}
	noteKeys             = chain{"note", "description"}
	registrationKeys     = chain{"registrationNo", "truckNumber"}
	litresKeys           = chain{"litres", "liters"}
	currentKMKeys        = chain{"currentKM", "currentKm", "odometer"}
	mileageKeys          = chain{"mileage"}
	rangeKeys            = chain{"range"}
	categoryKeys         = chain{"category", "expenseCategory"}
	additionalChargeKeys = chain{"additionalCharges", "extraCharges"}
	catalogKeys          = chain{"catalog", "expenseType"}
	imageKeys            = chain{"imgURL", "images"}
	descKeys             = chain{"desc", "description"}
	makeKeys             = chain{"make"}
	modelKeys            = chain{"model"}
	yearKeys             = chain{"year"}
	financedKeys         = chain{"isFinanced", "financed"}
	financeAmountKeys    = chain{"financeAmount", "loanAmount"}
	chassisKeys          = chain{"chassisNo", "chassisNumber"}
	engineKeys           = chain{"engineNo", "engineNumber"}
	createdAtKeys        = chain{"createdAt", "created_at"}
	userIDKeys           = chain{"userId", "id", "_id"}
	emailKeys            = chain{"email"}
	nameKeys             = chain{"name", "fullName"}
	subscribedKeys       = chain{"isSubscribed", "subscribed"}
)

// value returns the first truthy candidate, or nil when none is set.
func (c chain) value(rec map[string]any) any {
	for _, key := range c {
		if v, ok := rec[key]; ok && truthy(v) {
			return v
		}
	}
	return nil
}

func (c chain) text(rec map[string]any) string {
	return toText(c.value(rec))
}

func (c chain) flag(rec map[string]any) bool {
	return c.value(rec) != nil
}

// number resolves the chain as an amount, treating a missing value as zero.
func (c chain) number(rec map[string]any) float64 {
	return toDecimal(c.value(rec)).InexactFloat64()
}

// optional resolves the chain as an amount that is omitted from the legacy
// record when no candidate holds a number.
func (c chain) optional(rec map[string]any) *float64 {
	d, ok := parseDecimal(c.value(rec))
	if !ok {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
