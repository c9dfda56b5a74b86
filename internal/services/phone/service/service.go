// Package service implements the phone validation pipeline
package service

import (
	"context"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"idcheck/internal/core/risk"
	pnet "idcheck/internal/platform/net"
	auditdom "idcheck/internal/services/audit/domain"
	"idcheck/internal/services/phone/domain"
)

// DefaultRegion is assumed when the caller does not name one
const DefaultRegion = "US"

// Service defines the service contract for phone validation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	audit auditdom.RecorderPort

	now func() time.Time
}

// New creates a new phone validation service
func New(audit auditdom.RecorderPort) *Svc {
	if audit == nil {
		audit = auditdom.NopRecorder{}
	}
	return &Svc{audit: audit, now: time.Now}
}

// Validate parses and classifies one number. Unparseable or invalid input
// yields valid=false with risk 0; the pipeline never returns an error
func (s *Svc) Validate(ctx context.Context, raw, defaultCountry string) domain.Result {
	started := s.now()

	input := strings.TrimSpace(raw)
	region := strings.ToUpper(strings.TrimSpace(defaultCountry))
	if region == "" {
		region = DefaultRegion
	}

	res := domain.Result{Phone: input}

	num, err := phonenumbers.Parse(input, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		s.finish(ctx, &res, started)
		return res
	}

	res.Valid = true
	res.CountryCode = phonenumbers.GetRegionCodeForNumber(num)
	res.CountryPrefix = int(num.GetCountryCode())
	res.NationalFormat = phonenumbers.Format(num, phonenumbers.NATIONAL)
	res.InternationalFormat = phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	res.E164Format = phonenumbers.Format(num, phonenumbers.E164)

	numType := phonenumbers.GetNumberType(num)
	res.Type = mapLineType(numType)
	res.Country = countryName(res.CountryCode)
	res.Timezone = timezoneFor(res.CountryCode)
	res.RiskScore = score(numType, phonenumbers.IsPossibleNumber(num))

	s.finish(ctx, &res, started)
	return res
}

func (s *Svc) finish(ctx context.Context, res *domain.Result, started time.Time) {
	res.ValidationTimeMs = s.now().Sub(started).Milliseconds()
	res.CheckedAt = s.now().UTC()

	s.audit.Emit(auditdom.Record{
		Kind:       auditdom.KindPhone,
		Input:      res.Phone,
		Valid:      res.Valid,
		RiskScore:  res.RiskScore,
		DurationMs: res.ValidationTimeMs,
		APIKey:     pnet.APIKey(ctx),
		CheckedAt:  res.CheckedAt,
	})
}

// score starts at 100, penalizes improbable numbers and risky line types
func score(t phonenumbers.PhoneNumberType, possible bool) int {
	n := risk.Max
	if !possible {
		n -= 50
	}
	switch t {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE:
		// full trust
	case phonenumbers.VOIP:
		n -= 10
	case phonenumbers.PREMIUM_RATE:
		n -= 40
	case phonenumbers.TOLL_FREE:
		n -= 5
	default:
		n -= 20
	}
	return risk.Clamp(n)
}

func mapLineType(t phonenumbers.PhoneNumberType) domain.LineType {
	switch t {
	case phonenumbers.MOBILE:
		return domain.TypeMobile
	case phonenumbers.FIXED_LINE:
		return domain.TypeFixedLine
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return domain.TypeFixedOrMobile
	case phonenumbers.TOLL_FREE:
		return domain.TypeTollFree
	case phonenumbers.PREMIUM_RATE:
		return domain.TypePremiumRate
	case phonenumbers.SHARED_COST:
		return domain.TypeSharedCost
	case phonenumbers.VOIP:
		return domain.TypeVOIP
	case phonenumbers.PERSONAL_NUMBER:
		return domain.TypePersonal
	case phonenumbers.PAGER:
		return domain.TypePager
	case phonenumbers.UAN:
		return domain.TypeUAN
	case phonenumbers.VOICEMAIL:
		return domain.TypeVoicemail
	default:
		return domain.TypeUnknown
	}
}
