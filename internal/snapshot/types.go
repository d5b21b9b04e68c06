package snapshot

// JSON names follow the ELBv2 API member names so the output reads like the
// API's own describe responses. Every member of the describe shapes is
// carried; absent members are omitted.

type LoadBalancerRecord struct {
	LoadBalancerArn       string                   `json:"LoadBalancerArn"`
	DNSName               string                   `json:"DNSName,omitempty"`
	CanonicalHostedZoneId string                   `json:"CanonicalHostedZoneId,omitempty"`
	CreatedTime           string                   `json:"CreatedTime"` // always blank
	LoadBalancerName      string                   `json:"LoadBalancerName"`
	Scheme                string                   `json:"Scheme,omitempty"`
	VpcId                 string                   `json:"VpcId,omitempty"`
	State                 *StateRecord             `json:"State,omitempty"`
	Type                  string                   `json:"Type,omitempty"`
	AvailabilityZones     []AvailabilityZoneRecord `json:"AvailabilityZones,omitempty"`
	SecurityGroups        []string                 `json:"SecurityGroups,omitempty"`
	IpAddressType         string                   `json:"IpAddressType,omitempty"`
	CustomerOwnedIpv4Pool string                   `json:"CustomerOwnedIpv4Pool,omitempty"`

	EnforceSecurityGroupInboundRulesOnPrivateLinkTraffic string `json:"EnforceSecurityGroupInboundRulesOnPrivateLinkTraffic,omitempty"`

	EnablePrefixForIpv6SourceNat string           `json:"EnablePrefixForIpv6SourceNat,omitempty"`
	IpamPools                    *IpamPoolsRecord `json:"IpamPools,omitempty"`

	// Listeners is never nil so it always encodes as an array.
	Listeners []ListenerRecord `json:"Listeners"`
}

type StateRecord struct {
	Code   string `json:"Code,omitempty"`
	Reason string `json:"Reason,omitempty"`
}

type IpamPoolsRecord struct {
	Ipv4IpamPoolId string `json:"Ipv4IpamPoolId,omitempty"`
}

type AvailabilityZoneRecord struct {
	ZoneName              string                      `json:"ZoneName,omitempty"`
	SubnetId              string                      `json:"SubnetId,omitempty"`
	OutpostId             string                      `json:"OutpostId,omitempty"`
	LoadBalancerAddresses []LoadBalancerAddressRecord `json:"LoadBalancerAddresses,omitempty"`
	SourceNatIpv6Prefixes []string                    `json:"SourceNatIpv6Prefixes,omitempty"`
}

type LoadBalancerAddressRecord struct {
	IpAddress          string `json:"IpAddress,omitempty"`
	AllocationId       string `json:"AllocationId,omitempty"`
	PrivateIPv4Address string `json:"PrivateIPv4Address,omitempty"`
	IPv6Address        string `json:"IPv6Address,omitempty"`
}

type ListenerRecord struct {
	ListenerArn          string                      `json:"ListenerArn"`
	LoadBalancerArn      string                      `json:"LoadBalancerArn,omitempty"`
	Port                 *int32                      `json:"Port,omitempty"`
	Protocol             string                      `json:"Protocol,omitempty"`
	Certificates         []CertificateRecord         `json:"Certificates,omitempty"`
	SslPolicy            string                      `json:"SslPolicy,omitempty"`
	DefaultActions       []ActionRecord              `json:"DefaultActions,omitempty"`
	AlpnPolicy           []string                    `json:"AlpnPolicy,omitempty"`
	MutualAuthentication *MutualAuthenticationRecord `json:"MutualAuthentication,omitempty"`

	// Rules stays nil unless rule lookup is enabled. In rules mode it is
	// always set, so a failed lookup still encodes as [].
	Rules []RuleRecord `json:"Rules,omitzero"`
}

type CertificateRecord struct {
	CertificateArn string `json:"CertificateArn,omitempty"`
	IsDefault      *bool  `json:"IsDefault,omitempty"`
}

type MutualAuthenticationRecord struct {
	Mode                          string `json:"Mode,omitempty"`
	TrustStoreArn                 string `json:"TrustStoreArn,omitempty"`
	IgnoreClientCertificateExpiry *bool  `json:"IgnoreClientCertificateExpiry,omitempty"`
	TrustStoreAssociationStatus   string `json:"TrustStoreAssociationStatus,omitempty"`
	AdvertiseTrustStoreCaNames    string `json:"AdvertiseTrustStoreCaNames,omitempty"`
}

type ActionRecord struct {
	Type                      string                           `json:"Type"`
	TargetGroupArn            string                           `json:"TargetGroupArn,omitempty"`
	AuthenticateOidcConfig    *AuthenticateOidcConfigRecord    `json:"AuthenticateOidcConfig,omitempty"`
	AuthenticateCognitoConfig *AuthenticateCognitoConfigRecord `json:"AuthenticateCognitoConfig,omitempty"`
	Order                     *int32                           `json:"Order,omitempty"`
	RedirectConfig            *RedirectConfigRecord            `json:"RedirectConfig,omitempty"`
	FixedResponseConfig       *FixedResponseConfigRecord       `json:"FixedResponseConfig,omitempty"`
	ForwardConfig             *ForwardConfigRecord             `json:"ForwardConfig,omitempty"`
	JwtValidationConfig       *JwtValidationConfigRecord       `json:"JwtValidationConfig,omitempty"`
}

type AuthenticateOidcConfigRecord struct {
	Issuer                           string            `json:"Issuer,omitempty"`
	AuthorizationEndpoint            string            `json:"AuthorizationEndpoint,omitempty"`
	TokenEndpoint                    string            `json:"TokenEndpoint,omitempty"`
	UserInfoEndpoint                 string            `json:"UserInfoEndpoint,omitempty"`
	ClientId                         string            `json:"ClientId,omitempty"`
	ClientSecret                     string            `json:"ClientSecret,omitempty"`
	SessionCookieName                string            `json:"SessionCookieName,omitempty"`
	Scope                            string            `json:"Scope,omitempty"`
	SessionTimeout                   *int64            `json:"SessionTimeout,omitempty"`
	AuthenticationRequestExtraParams map[string]string `json:"AuthenticationRequestExtraParams,omitempty"`
	OnUnauthenticatedRequest         string            `json:"OnUnauthenticatedRequest,omitempty"`
	UseExistingClientSecret          *bool             `json:"UseExistingClientSecret,omitempty"`
}

type AuthenticateCognitoConfigRecord struct {
	UserPoolArn                      string            `json:"UserPoolArn,omitempty"`
	UserPoolClientId                 string            `json:"UserPoolClientId,omitempty"`
	UserPoolDomain                   string            `json:"UserPoolDomain,omitempty"`
	SessionCookieName                string            `json:"SessionCookieName,omitempty"`
	Scope                            string            `json:"Scope,omitempty"`
	SessionTimeout                   *int64            `json:"SessionTimeout,omitempty"`
	AuthenticationRequestExtraParams map[string]string `json:"AuthenticationRequestExtraParams,omitempty"`
	OnUnauthenticatedRequest         string            `json:"OnUnauthenticatedRequest,omitempty"`
}

type JwtValidationConfigRecord struct {
	JwksEndpoint     string                     `json:"JwksEndpoint,omitempty"`
	Issuer           string                     `json:"Issuer,omitempty"`
	AdditionalClaims []JwtAdditionalClaimRecord `json:"AdditionalClaims,omitempty"`
}

type JwtAdditionalClaimRecord struct {
	Format string   `json:"Format,omitempty"`
	Name   string   `json:"Name,omitempty"`
	Values []string `json:"Values,omitempty"`
}

type ForwardConfigRecord struct {
	TargetGroups                []TargetGroupTupleRecord `json:"TargetGroups,omitempty"`
	TargetGroupStickinessConfig *StickinessConfigRecord  `json:"TargetGroupStickinessConfig,omitempty"`
}

type TargetGroupTupleRecord struct {
	TargetGroupArn string `json:"TargetGroupArn,omitempty"`
	Weight         *int32 `json:"Weight,omitempty"`
}

type StickinessConfigRecord struct {
	Enabled         *bool  `json:"Enabled,omitempty"`
	DurationSeconds *int32 `json:"DurationSeconds,omitempty"`
}

type RedirectConfigRecord struct {
	Protocol   string `json:"Protocol,omitempty"`
	Port       string `json:"Port,omitempty"`
	Host       string `json:"Host,omitempty"`
	Path       string `json:"Path,omitempty"`
	Query      string `json:"Query,omitempty"`
	StatusCode string `json:"StatusCode,omitempty"`
}

type FixedResponseConfigRecord struct {
	MessageBody string `json:"MessageBody,omitempty"`
	StatusCode  string `json:"StatusCode,omitempty"`
	ContentType string `json:"ContentType,omitempty"`
}

type RuleRecord struct {
	RuleArn    string            `json:"RuleArn"`
	Priority   string            `json:"Priority,omitempty"`
	Conditions []ConditionRecord `json:"Conditions"`
	Actions    []ActionRecord    `json:"Actions"`
	IsDefault  bool              `json:"IsDefault"`
	Transforms []TransformRecord `json:"Transforms,omitempty"`
}

type ConditionRecord struct {
	Field                   string                   `json:"Field,omitempty"`
	Values                  []string                 `json:"Values,omitempty"`
	HostHeaderConfig        *PatternValuesRecord     `json:"HostHeaderConfig,omitempty"`
	PathPatternConfig       *PatternValuesRecord     `json:"PathPatternConfig,omitempty"`
	HttpHeaderConfig        *HttpHeaderConfigRecord  `json:"HttpHeaderConfig,omitempty"`
	QueryStringConfig       *QueryStringConfigRecord `json:"QueryStringConfig,omitempty"`
	HttpRequestMethodConfig *ValuesRecord            `json:"HttpRequestMethodConfig,omitempty"`
	SourceIpConfig          *ValuesRecord            `json:"SourceIpConfig,omitempty"`
	RegexValues             []string                 `json:"RegexValues,omitempty"`
}

type ValuesRecord struct {
	Values []string `json:"Values,omitempty"`
}

// PatternValuesRecord is a condition that matches either wildcard values or
// regular expressions.
type PatternValuesRecord struct {
	Values      []string `json:"Values,omitempty"`
	RegexValues []string `json:"RegexValues,omitempty"`
}

type HttpHeaderConfigRecord struct {
	HttpHeaderName string   `json:"HttpHeaderName,omitempty"`
	Values         []string `json:"Values,omitempty"`
	RegexValues    []string `json:"RegexValues,omitempty"`
}

type QueryStringConfigRecord struct {
	Values []KeyValueRecord `json:"Values"`
}

type KeyValueRecord struct {
	Key   string `json:"Key,omitempty"`
	Value string `json:"Value,omitempty"`
}

type TransformRecord struct {
	Type                    string                `json:"Type,omitempty"`
	HostHeaderRewriteConfig *RewriteConfigsRecord `json:"HostHeaderRewriteConfig,omitempty"`
	UrlRewriteConfig        *RewriteConfigsRecord `json:"UrlRewriteConfig,omitempty"`
}

type RewriteConfigsRecord struct {
	Rewrites []RewriteRecord `json:"Rewrites,omitempty"`
}

type RewriteRecord struct {
	Regex   string `json:"Regex,omitempty"`
	Replace string `json:"Replace,omitempty"`
}
