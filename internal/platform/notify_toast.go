package platform

import (
	"fmt"
	"strings"
)

const (
	toastText  = "ToastText02"
	toastImage = "ToastImageAndText02"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell that shows a Windows toast. The image
// template is used only when opts carries an icon.
func toastScript(title, body string, opts Options) string {
	icon := strings.TrimSpace(opts.IconPath)
	kind := toastText
	if icon != "" {
		kind = toastImage
	}

	var b strings.Builder
	b.WriteString("[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; ")
	fmt.Fprintf(&b, "$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); ", kind)
	b.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&b, "$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(title))
	fmt.Fprintf(&b, "$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(body))
	if icon != "" {
		fmt.Fprintf(&b, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	b.WriteString("$toast = [Windows.UI.Notifications.ToastNotification]::new($template); ")
	if opts.Critical {
		b.WriteString("$toast.Priority = 1; ")
	} else {
		fmt.Fprintf(&b, "$toast.ExpirationTime = [DateTimeOffset]::Now.AddMilliseconds(%d); ", opts.timeoutMillis())
	}
	fmt.Fprintf(&b, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);", psQuote(opts.appName()))
	return b.String()
}
