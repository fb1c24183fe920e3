package castmember

import "catalog/domain/castmember"

func ToOutput(m *castmember.CastMember) CastMemberOutput {
	return CastMemberOutput{
		ID:        m.ID().String(),
		Name:      m.Name(),
		Type:      m.Type().Int(),
		CreatedAt: m.CreatedAt(),
	}
}

func toOutputs(members []*castmember.CastMember) []CastMemberOutput {
	out := make([]CastMemberOutput, len(members))
	for i, m := range members {
		out[i] = ToOutput(m)
	}
	return out
}
