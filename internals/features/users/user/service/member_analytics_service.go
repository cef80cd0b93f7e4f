package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/user/dto"
	"churchhub_backend/internals/features/users/user/model"
	"churchhub_backend/internals/helpers/dbtime"
)

const (
	topGroupsLimit   = 10
	recentMemberDays = 30
)

type ageBucket struct {
	label    string
	min, max int // max < 0 means open ended
}

var ageBuckets = []ageBucket{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-55", 46, 55},
	{"56-65", 56, 65},
	{"66+", 66, -1},
}

// ComputeMemberAnalytics folds the member list into the dashboard numbers.
// Ages compare calendar years only; members under 18 or without a birth date
// are counted in totalMembers but in no age group.
func ComputeMemberAnalytics(users []model.UserModel, now time.Time) dto.MemberAnalyticsDTO {
	ageCounts := make([]int, len(ageBuckets))
	neighborhoods := map[string]int{}
	professions := map[string]int{}
	recentSince := now.AddDate(0, 0, -recentMemberDays)
	recent := 0

	for _, u := range users {
		if u.DataNascimento != nil {
			age := dbtime.AgeOn(time.Time(*u.DataNascimento), now, true)
			for i, b := range ageBuckets {
				if age >= b.min && (b.max < 0 || age <= b.max) {
					ageCounts[i]++
					break
				}
			}
		}
		if u.Bairro != nil && strings.TrimSpace(*u.Bairro) != "" {
			neighborhoods[strings.TrimSpace(*u.Bairro)]++
		}
		if u.Profissao != nil && strings.TrimSpace(*u.Profissao) != "" {
			professions[strings.TrimSpace(*u.Profissao)]++
		}
		if !u.CreatedAt.Before(recentSince) {
			recent++
		}
	}

	out := dto.MemberAnalyticsDTO{
		TotalMembers:       len(users),
		RecentMembersCount: recent,
	}
	for i, b := range ageBuckets {
		out.MembersByAge = append(out.MembersByAge, dto.AgeGroupCount{AgeGroup: b.label, Count: ageCounts[i]})
	}
	for _, kv := range topCounts(neighborhoods, topGroupsLimit) {
		out.MembersByNeighborhood = append(out.MembersByNeighborhood, dto.NeighborhoodCount{Neighborhood: kv.key, Count: kv.count})
	}
	for _, kv := range topCounts(professions, topGroupsLimit) {
		out.MembersByProfession = append(out.MembersByProfession, dto.ProfessionCount{Profession: kv.key, Count: kv.count})
	}
	if out.MembersByNeighborhood == nil {
		out.MembersByNeighborhood = []dto.NeighborhoodCount{}
	}
	if out.MembersByProfession == nil {
		out.MembersByProfession = []dto.ProfessionCount{}
	}
	return out
}

type keyCount struct {
	key   string
	count int
}

// topCounts sorts by count desc, then key asc so ties are deterministic.
func topCounts(m map[string]int, limit int) []keyCount {
	list := make([]keyCount, 0, len(m))
	for k, v := range m {
		list = append(list, keyCount{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].key < list[j].key
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// BirthdaysInMonth keeps members born in month, sorted by day then name.
func BirthdaysInMonth(users []model.UserModel, month time.Month) []dto.BirthdayDTO {
	out := []dto.BirthdayDTO{}
	for _, u := range users {
		if u.DataNascimento == nil {
			continue
		}
		t := time.Time(*u.DataNascimento)
		if t.Month() != month {
			continue
		}
		out = append(out, dto.BirthdayDTO{
			ID:             u.ID,
			Nome:           u.Nome,
			DataNascimento: dbtime.FormatDate(*u.DataNascimento),
			Dia:            t.Day(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Dia != out[j].Dia {
			return out[i].Dia < out[j].Dia
		}
		return out[i].Nome < out[j].Nome
	})
	return out
}

func LoadMemberAnalytics(ctx context.Context, db *gorm.DB, now time.Time) (dto.MemberAnalyticsDTO, error) {
	var users []model.UserModel
	if err := db.WithContext(ctx).
		Select("id, data_nascimento, bairro, profissao, created_at").
		Find(&users).Error; err != nil {
		return dto.MemberAnalyticsDTO{}, err
	}
	return ComputeMemberAnalytics(users, now), nil
}

func LoadBirthdays(ctx context.Context, db *gorm.DB, month time.Month) ([]dto.BirthdayDTO, error) {
	var users []model.UserModel
	if err := db.WithContext(ctx).
		Select("id, nome, data_nascimento").
		Where("is_active = ? AND data_nascimento IS NOT NULL", true).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return BirthdaysInMonth(users, month), nil
}
