package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleEmployee,
	domain.RoleModerator,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// GenerateNicknameFromChineseName 把中文姓名转成拼音昵称并附加随机数字，
// 用于生成测试邮箱的本地部分
func GenerateNicknameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	nickname := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		nickname += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		nickname += string(digits[rand.Intn(len(digits))])
	}

	return nickname
}

func GenerateRandomEmployee(password string, emailDomainName string, subunitID int64) (*domain.Employee, error) {
	fullName := GenerateRandomChineseName()
	nickname := GenerateNicknameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Email:        nickname + "@" + emailDomainName,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Role:         GenerateRandomRole(),
		SubunitID:    subunitID,
	}

	return employee, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

var postStatuses = []domain.PostStatus{
	domain.StatusUnderConsideration,
	domain.StatusPosted,
	domain.StatusReturnedForImprovement,
	domain.StatusRejected,
	domain.StatusArchived,
}

func GenerateRandomPostStatus() domain.PostStatus {
	return postStatuses[rand.Intn(len(postStatuses))]
}

var postTopics = []string{
	"本月员工生日会通知", "食堂菜单更新", "新一期内部培训报名开始",
	"部门团建活动回顾", "年度优秀员工评选", "办公区设备维护安排",
	"公司运动会报名", "安全生产月活动总结",
}

func GenerateRandomPost(author *domain.Employee) *domain.Post {
	topic := postTopics[rand.Intn(len(postTopics))]
	return &domain.Post{
		AuthorID:  author.ID,
		SubunitID: author.SubunitID,
		Content:   topic + "：" + GenerateRandomChineseName() + "撰写的测试内容。",
		Status:    GenerateRandomPostStatus(),
	}
}

// GenerateRandomCreatedAt 生成过去 months 个月内的随机时间，用于统计数据的测试
func GenerateRandomCreatedAt(months int) time.Time {
	return time.Now().AddDate(0, -rand.Intn(months), 0).Add(-time.Duration(rand.Intn(24*30)) * time.Hour)
}

var subunitNames = []string{
	"技术部", "市场部", "人事部", "财务部", "行政部", "法务部",
}

func GenerateRandomSubunit(leaderID int64, emailDomainName string) *domain.Subunit {
	name := subunitNames[rand.Intn(len(subunitNames))] + GenerateRandomID(0, 3)
	return &domain.Subunit{
		Name:     name,
		Address:  fmt.Sprintf("科创大厦 %d 层", rand.Intn(20)+1),
		Phone:    fmt.Sprintf("020-%08d", rand.Intn(100000000)),
		Email:    fmt.Sprintf("subunit%04d@%s", rand.Intn(10000), emailDomainName),
		LeaderID: leaderID,
	}
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}
