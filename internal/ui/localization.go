package ui

import (
	"github.com/redsea-eng/englib/internal/policy"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyCollegeName = "college_name"
	KeyWelcome     = "welcome"
	KeyLogout      = "logout"
	KeyBack        = "back"
	KeyHome        = "home"
	KeyDashboard   = "dashboard"
	KeyAdminPanel  = "admin_panel"
	KeySettings    = "settings"
	KeySave        = "save"
	KeyCancel      = "cancel"
	KeyConfirm     = "confirm"
	KeyDelete      = "delete"
	KeyAdd         = "add"
	KeyError       = "error"

	KeyLoginTitle         = "login_title"
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyLoginButton        = "login_button"
	KeyGuestTab           = "guest_tab"
	KeyMemberTab          = "member_tab"
	KeyGuestName          = "guest_name"
	KeyGuestEnter         = "guest_enter"
	KeyInvalidCredentials = "invalid_credentials"
	KeyAccountLocked      = "account_locked"
	KeySuspiciousInput    = "suspicious_input"
	KeyEmptyFields        = "empty_fields"
	KeyGuestExpired       = "guest_expired"
	KeyLoginFooter        = "login_footer"

	KeyChooseDepartment = "choose_department"
	KeyDeptElectrical   = "dept_electrical"
	KeyDeptChemical     = "dept_chemical"
	KeyDeptCivil        = "dept_civil"
	KeyDeptMechanical   = "dept_mechanical"
	KeyDeptBiomedical   = "dept_biomedical"

	KeyChooseSemester = "choose_semester"
	KeySemesterFormat = "semester_format"

	KeyCourses             = "courses"
	KeyNoCourses           = "no_courses"
	KeyAddCourse           = "add_course"
	KeyCourseName          = "course_name"
	KeyOpenCourse          = "open_course"
	KeyDiscussion          = "discussion"
	KeyDeleteCourse        = "delete_course"
	KeyConfirmDeleteCourse = "confirm_delete_course"

	KeyCategoryLecture   = "category_lecture"
	KeyCategoryReference = "category_reference"
	KeyCategoryExercise  = "category_exercise"
	KeyCategoryExam      = "category_exam"
	KeyUploadFile        = "upload_file"
	KeyDownload          = "download"
	KeyNoFiles           = "no_files"
	KeyDeleteFile        = "delete_file"
	KeyConfirmDeleteFile = "confirm_delete_file"
	KeyFileTooLarge      = "file_too_large"
	KeyBadExtension      = "bad_extension"
	KeyFileSaved         = "file_saved"
	KeyLastUpdate        = "last_update"
	KeyUploadedBy        = "uploaded_by"

	KeyMessagePlaceholder   = "message_placeholder"
	KeySend                 = "send"
	KeyAttachImage          = "attach_image"
	KeyImageTooLarge        = "image_too_large"
	KeyEmptyMessage         = "empty_message"
	KeyConfirmDeleteMessage = "confirm_delete_message"

	KeyActiveUsers     = "active_users"
	KeyTotalStudents   = "total_students"
	KeyTotalProfessors = "total_professors"
	KeyCurrentGuests   = "current_guests"
	KeyMostDownloaded  = "most_downloaded"
	KeyRecentActivity  = "recent_activity"
	KeyNoDownloads     = "no_downloads"

	KeyUsers             = "users"
	KeyAddUser           = "add_user"
	KeyDisplayName       = "display_name"
	KeyRole              = "role"
	KeyRoleStudent       = "role_student"
	KeyRoleAdmin         = "role_admin"
	KeyRoleRoot          = "role_root"
	KeyRoleGuest         = "role_guest"
	KeyLock              = "lock"
	KeyUnlock            = "unlock"
	KeyLockedMark        = "locked_mark"
	KeyConfirmDeleteUser = "confirm_delete_user"
	KeyDuplicateUsername = "duplicate_username"
	KeyLogos             = "logos"
	KeyUniversityLogo    = "university_logo"
	KeyCollegeLogo       = "college_logo"
	KeyLogoUpdated       = "logo_updated"

	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyGuestMinutes      = "guest_minutes"
	KeySettingsSaved     = "settings_saved"
	KeyBrowse            = "browse"

	KeyDenyProtectedAccount = "deny_protected_account"
	KeyDenySelfDelete       = "deny_self_delete"
	KeyDenyAdminStudents    = "deny_admin_students_only"
	KeyDenyRootTier         = "deny_root_tier_required"
	KeyDenyLockRoot         = "deny_lock_root"
	KeyDenyStaffOnly        = "deny_staff_only"
	KeyDenyGuestReadOnly    = "deny_guest_read_only"
	KeyDenyRootOnly         = "deny_root_only"
	KeyDenyGeneric          = "deny_generic"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "ar",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ar": "العربية",
		"en": "English",
	}
}

// DenyText returns the localized wording for a policy refusal
func (l *Localization) DenyText(reason policy.DenyReason) string {
	switch reason {
	case policy.ReasonProtectedAccount:
		return l.GetText(KeyDenyProtectedAccount)
	case policy.ReasonSelfDelete:
		return l.GetText(KeyDenySelfDelete)
	case policy.ReasonAdminDeletesStudentsOnly:
		return l.GetText(KeyDenyAdminStudents)
	case policy.ReasonRootTierRequired:
		return l.GetText(KeyDenyRootTier)
	case policy.ReasonLockRootRequiresRoot:
		return l.GetText(KeyDenyLockRoot)
	case policy.ReasonStaffOnly:
		return l.GetText(KeyDenyStaffOnly)
	case policy.ReasonGuestReadOnly:
		return l.GetText(KeyDenyGuestReadOnly)
	case policy.ReasonRootOnly:
		return l.GetText(KeyDenyRootOnly)
	default:
		return l.GetText(KeyDenyGeneric)
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Engineering E-Library",
		KeyCollegeName: "College of Engineering - Red Sea University",
		KeyWelcome:     "Welcome, %s",
		KeyLogout:      "Logout",
		KeyBack:        "Back",
		KeyHome:        "Home",
		KeyDashboard:   "Dashboard",
		KeyAdminPanel:  "User Management",
		KeySettings:    "Settings",
		KeySave:        "Save",
		KeyCancel:      "Cancel",
		KeyConfirm:     "Confirm",
		KeyDelete:      "Delete",
		KeyAdd:         "Add",
		KeyError:       "Error",

		KeyLoginTitle:         "Sign In",
		KeyUsername:           "Username",
		KeyPassword:           "Password",
		KeyLoginButton:        "Sign In",
		KeyGuestTab:           "Guest",
		KeyMemberTab:          "Member",
		KeyGuestName:          "Your name",
		KeyGuestEnter:         "Enter as guest",
		KeyInvalidCredentials: "Invalid username or password",
		KeyAccountLocked:      "This account is frozen. Contact the administrator.",
		KeySuspiciousInput:    "The entered text contains disallowed characters",
		KeyEmptyFields:        "Please fill in all fields",
		KeyGuestExpired:       "Your guest session has expired",
		KeyLoginFooter:        "Members sign in with their college account; visitors may browse as guests",

		KeyChooseDepartment: "Choose a department",
		KeyDeptElectrical:   "Electrical Engineering",
		KeyDeptChemical:     "Chemical Engineering",
		KeyDeptCivil:        "Civil Engineering",
		KeyDeptMechanical:   "Mechanical Engineering",
		KeyDeptBiomedical:   "Biomedical Engineering",

		KeyChooseSemester: "Choose a semester",
		KeySemesterFormat: "Semester %d",

		KeyCourses:             "Courses",
		KeyNoCourses:           "No courses yet for this semester",
		KeyAddCourse:           "Add Course",
		KeyCourseName:          "Course name",
		KeyOpenCourse:          "Materials",
		KeyDiscussion:          "Discussion",
		KeyDeleteCourse:        "Delete Course",
		KeyConfirmDeleteCourse: "Delete this course and all of its files?",

		KeyCategoryLecture:   "Lectures",
		KeyCategoryReference: "References",
		KeyCategoryExercise:  "Exercises",
		KeyCategoryExam:      "Exams",
		KeyUploadFile:        "Upload File",
		KeyDownload:          "Download",
		KeyNoFiles:           "No files in this section",
		KeyDeleteFile:        "Delete File",
		KeyConfirmDeleteFile: "Delete this file?",
		KeyFileTooLarge:      "File exceeds the 150 MB limit",
		KeyBadExtension:      "File type is not allowed",
		KeyFileSaved:         "File saved",
		KeyLastUpdate:        "Last update",
		KeyUploadedBy:        "Uploaded by",

		KeyMessagePlaceholder:   "Write a message...",
		KeySend:                 "Send",
		KeyAttachImage:          "Attach Image",
		KeyImageTooLarge:        "Image exceeds the 3 MB limit",
		KeyEmptyMessage:         "Cannot send an empty message",
		KeyConfirmDeleteMessage: "Delete this message?",

		KeyActiveUsers:     "Active Users",
		KeyTotalStudents:   "Students",
		KeyTotalProfessors: "Professors",
		KeyCurrentGuests:   "Guests",
		KeyMostDownloaded:  "Most Downloaded",
		KeyRecentActivity:  "Recent Activity",
		KeyNoDownloads:     "No downloads yet",

		KeyUsers:             "Users",
		KeyAddUser:           "Add User",
		KeyDisplayName:       "Display name",
		KeyRole:              "Role",
		KeyRoleStudent:       "Student",
		KeyRoleAdmin:         "Professor",
		KeyRoleRoot:          "Administrator",
		KeyRoleGuest:         "Guest",
		KeyLock:              "Freeze",
		KeyUnlock:            "Unfreeze",
		KeyLockedMark:        "frozen",
		KeyConfirmDeleteUser: "Delete this account?",
		KeyDuplicateUsername: "This username is already taken",
		KeyLogos:             "Institutional Logos",
		KeyUniversityLogo:    "Change University Logo",
		KeyCollegeLogo:       "Change College Logo",
		KeyLogoUpdated:       "Logo updated",

		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyGuestMinutes:      "Guest session (minutes)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyBrowse:            "Browse",

		KeyDenyProtectedAccount: "The primary administrator account (zero) can never be removed",
		KeyDenySelfDelete:       "You cannot delete the account you are currently using",
		KeyDenyAdminStudents:    "As a professor you may remove student accounts only",
		KeyDenyRootTier:         "Only the primary administrator may remove administrator accounts",
		KeyDenyLockRoot:         "You are not allowed to freeze an administrator account",
		KeyDenyStaffOnly:        "This action is reserved for the administrator and professors",
		KeyDenyGuestReadOnly:    "Guests cannot take part in the discussion",
		KeyDenyRootOnly:         "Only the primary administrator manages institutional logos",
		KeyDenyGeneric:          "Action not permitted",
	}

	// Arabic texts
	l.texts["ar"] = map[string]string{
		KeyAppTitle:    "المكتبة الإلكترونية الهندسية",
		KeyCollegeName: "كلية الهندسة - جامعة البحر الأحمر",
		KeyWelcome:     "مرحباً، %s",
		KeyLogout:      "تسجيل الخروج",
		KeyBack:        "رجوع",
		KeyHome:        "الرئيسية",
		KeyDashboard:   "لوحة التحكم",
		KeyAdminPanel:  "إدارة المستخدمين",
		KeySettings:    "الإعدادات",
		KeySave:        "حفظ",
		KeyCancel:      "إلغاء",
		KeyConfirm:     "تأكيد",
		KeyDelete:      "حذف",
		KeyAdd:         "إضافة",
		KeyError:       "خطأ",

		KeyLoginTitle:         "تسجيل الدخول",
		KeyUsername:           "اسم المستخدم",
		KeyPassword:           "كلمة المرور",
		KeyLoginButton:        "دخول",
		KeyGuestTab:           "زائر",
		KeyMemberTab:          "عضو",
		KeyGuestName:          "اسمك",
		KeyGuestEnter:         "الدخول كزائر",
		KeyInvalidCredentials: "اسم المستخدم أو كلمة المرور غير صحيحة",
		KeyAccountLocked:      "هذا الحساب مجمد. يرجى التواصل مع المدير.",
		KeySuspiciousInput:    "النص المدخل يحتوي على رموز غير مسموح بها",
		KeyEmptyFields:        "يرجى تعبئة جميع الحقول",
		KeyGuestExpired:       "انتهت جلسة الزائر الخاصة بك",
		KeyLoginFooter:        "يسجل الأعضاء الدخول بحساب الكلية، ويمكن للزوار التصفح كضيوف",

		KeyChooseDepartment: "اختر القسم",
		KeyDeptElectrical:   "الهندسة الكهربائية",
		KeyDeptChemical:     "الهندسة الكيميائية",
		KeyDeptCivil:        "الهندسة المدنية",
		KeyDeptMechanical:   "الهندسة الميكانيكية",
		KeyDeptBiomedical:   "هندسة الأجهزة الطبية",

		KeyChooseSemester: "اختر الفصل الدراسي",
		KeySemesterFormat: "الفصل %d",

		KeyCourses:             "المقررات",
		KeyNoCourses:           "لا توجد مقررات لهذا الفصل بعد",
		KeyAddCourse:           "إضافة مقرر",
		KeyCourseName:          "اسم المقرر",
		KeyOpenCourse:          "المحتويات",
		KeyDiscussion:          "النقاش",
		KeyDeleteCourse:        "حذف المقرر",
		KeyConfirmDeleteCourse: "هل تريد حذف هذا المقرر وجميع ملفاته؟",

		KeyCategoryLecture:   "المحاضرات",
		KeyCategoryReference: "المراجع",
		KeyCategoryExercise:  "التمارين",
		KeyCategoryExam:      "الامتحانات",
		KeyUploadFile:        "رفع ملف",
		KeyDownload:          "تحميل",
		KeyNoFiles:           "لا توجد ملفات في هذا القسم",
		KeyDeleteFile:        "حذف الملف",
		KeyConfirmDeleteFile: "هل تريد حذف هذا الملف؟",
		KeyFileTooLarge:      "حجم الملف يتجاوز الحد المسموح 150 ميجابايت",
		KeyBadExtension:      "نوع الملف غير مسموح به",
		KeyFileSaved:         "تم حفظ الملف",
		KeyLastUpdate:        "آخر تحديث",
		KeyUploadedBy:        "رفع بواسطة",

		KeyMessagePlaceholder:   "اكتب رسالة...",
		KeySend:                 "إرسال",
		KeyAttachImage:          "إرفاق صورة",
		KeyImageTooLarge:        "حجم الصورة يتجاوز الحد المسموح 3 ميجابايت",
		KeyEmptyMessage:         "لا يمكن إرسال رسالة فارغة",
		KeyConfirmDeleteMessage: "هل تريد حذف هذه الرسالة؟",

		KeyActiveUsers:     "المستخدمون النشطون",
		KeyTotalStudents:   "الطلاب",
		KeyTotalProfessors: "الأساتذة",
		KeyCurrentGuests:   "الزوار",
		KeyMostDownloaded:  "الأكثر تحميلاً",
		KeyRecentActivity:  "آخر النشاطات",
		KeyNoDownloads:     "لا توجد تحميلات بعد",

		KeyUsers:             "المستخدمون",
		KeyAddUser:           "إضافة مستخدم",
		KeyDisplayName:       "الاسم",
		KeyRole:              "الصلاحية",
		KeyRoleStudent:       "طالب",
		KeyRoleAdmin:         "أستاذ",
		KeyRoleRoot:          "المدير العام",
		KeyRoleGuest:         "زائر",
		KeyLock:              "تجميد",
		KeyUnlock:            "إلغاء التجميد",
		KeyLockedMark:        "مجمد",
		KeyConfirmDeleteUser: "هل تريد حذف هذا الحساب؟",
		KeyDuplicateUsername: "اسم المستخدم مستخدم مسبقاً",
		KeyLogos:             "الشعارات الرسمية",
		KeyUniversityLogo:    "تغيير شعار الجامعة",
		KeyCollegeLogo:       "تغيير شعار الكلية",
		KeyLogoUpdated:       "تم تحديث الشعار",

		KeyLanguage:          "اللغة",
		KeyDownloadDirectory: "مجلد التحميل",
		KeyGuestMinutes:      "مدة جلسة الزائر (دقائق)",
		KeySettingsSaved:     "تم حفظ الإعدادات بنجاح!",
		KeyBrowse:            "استعراض",

		KeyDenyProtectedAccount: "لا يمكن حذف حساب المدير العام (zero) أبداً",
		KeyDenySelfDelete:       "لا يمكنك حذف الحساب الذي تستخدمه حالياً",
		KeyDenyAdminStudents:    "بصفتك أستاذاً يمكنك حذف حسابات الطلاب فقط",
		KeyDenyRootTier:         "المدير العام وحده يستطيع حذف حسابات المديرين",
		KeyDenyLockRoot:         "غير مسموح لك بتجميد حساب مدير",
		KeyDenyStaffOnly:        "هذا الإجراء مخصص للمدير والأساتذة فقط",
		KeyDenyGuestReadOnly:    "لا يمكن للزوار المشاركة في النقاش",
		KeyDenyRootOnly:         "المدير العام وحده يدير الشعارات الرسمية",
		KeyDenyGeneric:          "الإجراء غير مسموح به",
	}
}
