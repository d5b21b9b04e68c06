package snapshot

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// toLoadBalancerRecord copies an ELBv2 load balancer onto its record. The
// creation time is blanked and the listener list starts empty.
func toLoadBalancerRecord(lb elbtypes.LoadBalancer) LoadBalancerRecord {
	rec := LoadBalancerRecord{
		LoadBalancerArn:       aws.ToString(lb.LoadBalancerArn),
		DNSName:               aws.ToString(lb.DNSName),
		CanonicalHostedZoneId: aws.ToString(lb.CanonicalHostedZoneId),
		CreatedTime:           "",
		LoadBalancerName:      aws.ToString(lb.LoadBalancerName),
		Scheme:                string(lb.Scheme),
		VpcId:                 aws.ToString(lb.VpcId),
		Type:                  string(lb.Type),
		SecurityGroups:        lb.SecurityGroups,
		IpAddressType:         string(lb.IpAddressType),
		CustomerOwnedIpv4Pool: aws.ToString(lb.CustomerOwnedIpv4Pool),
		Listeners:             []ListenerRecord{},

		EnforceSecurityGroupInboundRulesOnPrivateLinkTraffic: aws.ToString(lb.EnforceSecurityGroupInboundRulesOnPrivateLinkTraffic),
		EnablePrefixForIpv6SourceNat:                         string(lb.EnablePrefixForIpv6SourceNat),
	}

	if lb.State != nil {
		rec.State = &StateRecord{
			Code:   string(lb.State.Code),
			Reason: aws.ToString(lb.State.Reason),
		}
	}
	if lb.IpamPools != nil {
		rec.IpamPools = &IpamPoolsRecord{Ipv4IpamPoolId: aws.ToString(lb.IpamPools.Ipv4IpamPoolId)}
	}

	for _, az := range lb.AvailabilityZones {
		zone := AvailabilityZoneRecord{
			ZoneName:              aws.ToString(az.ZoneName),
			SubnetId:              aws.ToString(az.SubnetId),
			OutpostId:             aws.ToString(az.OutpostId),
			SourceNatIpv6Prefixes: az.SourceNatIpv6Prefixes,
		}
		for _, addr := range az.LoadBalancerAddresses {
			zone.LoadBalancerAddresses = append(zone.LoadBalancerAddresses, LoadBalancerAddressRecord{
				IpAddress:          aws.ToString(addr.IpAddress),
				AllocationId:       aws.ToString(addr.AllocationId),
				PrivateIPv4Address: aws.ToString(addr.PrivateIPv4Address),
				IPv6Address:        aws.ToString(addr.IPv6Address),
			})
		}
		rec.AvailabilityZones = append(rec.AvailabilityZones, zone)
	}
	return rec
}

func toListenerRecord(l elbtypes.Listener) ListenerRecord {
	rec := ListenerRecord{
		ListenerArn:     aws.ToString(l.ListenerArn),
		LoadBalancerArn: aws.ToString(l.LoadBalancerArn),
		Port:            l.Port,
		Protocol:        string(l.Protocol),
		SslPolicy:       aws.ToString(l.SslPolicy),
		DefaultActions:  toActionRecords(l.DefaultActions),
		AlpnPolicy:      l.AlpnPolicy,
	}
	for _, c := range l.Certificates {
		rec.Certificates = append(rec.Certificates, CertificateRecord{
			CertificateArn: aws.ToString(c.CertificateArn),
			IsDefault:      c.IsDefault,
		})
	}
	if ma := l.MutualAuthentication; ma != nil {
		rec.MutualAuthentication = &MutualAuthenticationRecord{
			Mode:                          aws.ToString(ma.Mode),
			TrustStoreArn:                 aws.ToString(ma.TrustStoreArn),
			IgnoreClientCertificateExpiry: ma.IgnoreClientCertificateExpiry,
			TrustStoreAssociationStatus:   string(ma.TrustStoreAssociationStatus),
			AdvertiseTrustStoreCaNames:    string(ma.AdvertiseTrustStoreCaNames),
		}
	}
	return rec
}

func toRuleRecord(r elbtypes.Rule) RuleRecord {
	rec := RuleRecord{
		RuleArn:    aws.ToString(r.RuleArn),
		Priority:   aws.ToString(r.Priority),
		Conditions: []ConditionRecord{},
		Actions:    toActionRecords(r.Actions),
		IsDefault:  aws.ToBool(r.IsDefault),
	}
	if rec.Actions == nil {
		rec.Actions = []ActionRecord{}
	}

	for _, c := range r.Conditions {
		rec.Conditions = append(rec.Conditions, toConditionRecord(c))
	}
	for _, t := range r.Transforms {
		tr := TransformRecord{Type: string(t.Type)}
		if t.HostHeaderRewriteConfig != nil {
			tr.HostHeaderRewriteConfig = toRewriteConfigs(t.HostHeaderRewriteConfig.Rewrites)
		}
		if t.UrlRewriteConfig != nil {
			tr.UrlRewriteConfig = toRewriteConfigs(t.UrlRewriteConfig.Rewrites)
		}
		rec.Transforms = append(rec.Transforms, tr)
	}
	return rec
}

func toConditionRecord(c elbtypes.RuleCondition) ConditionRecord {
	cond := ConditionRecord{
		Field:       aws.ToString(c.Field),
		Values:      c.Values,
		RegexValues: c.RegexValues,
	}
	if c.HostHeaderConfig != nil {
		cond.HostHeaderConfig = &PatternValuesRecord{
			Values:      c.HostHeaderConfig.Values,
			RegexValues: c.HostHeaderConfig.RegexValues,
		}
	}
	if c.PathPatternConfig != nil {
		cond.PathPatternConfig = &PatternValuesRecord{
			Values:      c.PathPatternConfig.Values,
			RegexValues: c.PathPatternConfig.RegexValues,
		}
	}
	if c.HttpRequestMethodConfig != nil {
		cond.HttpRequestMethodConfig = &ValuesRecord{Values: c.HttpRequestMethodConfig.Values}
	}
	if c.SourceIpConfig != nil {
		cond.SourceIpConfig = &ValuesRecord{Values: c.SourceIpConfig.Values}
	}
	if c.HttpHeaderConfig != nil {
		cond.HttpHeaderConfig = &HttpHeaderConfigRecord{
			HttpHeaderName: aws.ToString(c.HttpHeaderConfig.HttpHeaderName),
			Values:         c.HttpHeaderConfig.Values,
			RegexValues:    c.HttpHeaderConfig.RegexValues,
		}
	}
	if c.QueryStringConfig != nil {
		qs := &QueryStringConfigRecord{Values: []KeyValueRecord{}}
		for _, kv := range c.QueryStringConfig.Values {
			qs.Values = append(qs.Values, KeyValueRecord{
				Key:   aws.ToString(kv.Key),
				Value: aws.ToString(kv.Value),
			})
		}
		cond.QueryStringConfig = qs
	}
	return cond
}

func toRewriteConfigs(rewrites []elbtypes.RewriteConfig) *RewriteConfigsRecord {
	out := &RewriteConfigsRecord{}
	for _, rw := range rewrites {
		out.Rewrites = append(out.Rewrites, RewriteRecord{
			Regex:   aws.ToString(rw.Regex),
			Replace: aws.ToString(rw.Replace),
		})
	}
	return out
}

func toActionRecords(actions []elbtypes.Action) []ActionRecord {
	if len(actions) == 0 {
		return nil
	}
	out := make([]ActionRecord, 0, len(actions))
	for _, a := range actions {
		rec := ActionRecord{
			Type:           string(a.Type),
			TargetGroupArn: aws.ToString(a.TargetGroupArn),
			Order:          a.Order,
		}
		if oc := a.AuthenticateOidcConfig; oc != nil {
			rec.AuthenticateOidcConfig = &AuthenticateOidcConfigRecord{
				Issuer:                           aws.ToString(oc.Issuer),
				AuthorizationEndpoint:            aws.ToString(oc.AuthorizationEndpoint),
				TokenEndpoint:                    aws.ToString(oc.TokenEndpoint),
				UserInfoEndpoint:                 aws.ToString(oc.UserInfoEndpoint),
				ClientId:                         aws.ToString(oc.ClientId),
				ClientSecret:                     aws.ToString(oc.ClientSecret),
				SessionCookieName:                aws.ToString(oc.SessionCookieName),
				Scope:                            aws.ToString(oc.Scope),
				SessionTimeout:                   oc.SessionTimeout,
				AuthenticationRequestExtraParams: oc.AuthenticationRequestExtraParams,
				OnUnauthenticatedRequest:         string(oc.OnUnauthenticatedRequest),
				UseExistingClientSecret:          oc.UseExistingClientSecret,
			}
		}
		if cc := a.AuthenticateCognitoConfig; cc != nil {
			rec.AuthenticateCognitoConfig = &AuthenticateCognitoConfigRecord{
				UserPoolArn:                      aws.ToString(cc.UserPoolArn),
				UserPoolClientId:                 aws.ToString(cc.UserPoolClientId),
				UserPoolDomain:                   aws.ToString(cc.UserPoolDomain),
				SessionCookieName:                aws.ToString(cc.SessionCookieName),
				Scope:                            aws.ToString(cc.Scope),
				SessionTimeout:                   cc.SessionTimeout,
				AuthenticationRequestExtraParams: cc.AuthenticationRequestExtraParams,
				OnUnauthenticatedRequest:         string(cc.OnUnauthenticatedRequest),
			}
		}
		if rc := a.RedirectConfig; rc != nil {
			rec.RedirectConfig = &RedirectConfigRecord{
				Protocol:   aws.ToString(rc.Protocol),
				Port:       aws.ToString(rc.Port),
				Host:       aws.ToString(rc.Host),
				Path:       aws.ToString(rc.Path),
				Query:      aws.ToString(rc.Query),
				StatusCode: string(rc.StatusCode),
			}
		}
		if fr := a.FixedResponseConfig; fr != nil {
			rec.FixedResponseConfig = &FixedResponseConfigRecord{
				MessageBody: aws.ToString(fr.MessageBody),
				StatusCode:  aws.ToString(fr.StatusCode),
				ContentType: aws.ToString(fr.ContentType),
			}
		}
		if fc := a.ForwardConfig; fc != nil {
			fwd := &ForwardConfigRecord{}
			for _, tg := range fc.TargetGroups {
				fwd.TargetGroups = append(fwd.TargetGroups, TargetGroupTupleRecord{
					TargetGroupArn: aws.ToString(tg.TargetGroupArn),
					Weight:         tg.Weight,
				})
			}
			if sc := fc.TargetGroupStickinessConfig; sc != nil {
				fwd.TargetGroupStickinessConfig = &StickinessConfigRecord{
					Enabled:         sc.Enabled,
					DurationSeconds: sc.DurationSeconds,
				}
			}
			rec.ForwardConfig = fwd
		}
		if jc := a.JwtValidationConfig; jc != nil {
			jwt := &JwtValidationConfigRecord{
				JwksEndpoint: aws.ToString(jc.JwksEndpoint),
				Issuer:       aws.ToString(jc.Issuer),
			}
			for _, claim := range jc.AdditionalClaims {
				jwt.AdditionalClaims = append(jwt.AdditionalClaims, JwtAdditionalClaimRecord{
					Format: string(claim.Format),
					Name:   aws.ToString(claim.Name),
					Values: claim.Values,
				})
			}
			rec.JwtValidationConfig = jwt
		}
		out = append(out, rec)
	}
	return out
}
