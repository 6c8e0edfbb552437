//go:build windows
// +build windows

package probe

import (
	"time"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"corp/patchaudit/core"
	"corp/patchaudit/prioritize"
)

// not-yet-installed software updates, drivers excluded
const wuaSearchCriteria = "IsInstalled=0 and IsHidden=0 and Type='Software'"

// collectUpdates queries the Windows Update Agent over COM for the
// missing-update catalog. Two degradations stay distinct: the update
// module being absent (COM object cannot be created) and the module being
// present but the search failing. Both leave the counts null.
func collectUpdates() (core.UpdatePosture, *string) {
	var posture core.UpdatePosture

	// S_FALSE just means COM was already initialized on this thread
	_ = ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Microsoft.Update.Session")
	if err != nil {
		return posture, core.Str(moduleMissingNote(err))
	}
	defer unknown.Release()

	session, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return posture, core.Str(moduleMissingNote(err))
	}
	defer session.Release()

	searcherVar, err := oleutil.CallMethod(session, "CreateUpdateSearcher")
	if err != nil {
		return posture, core.Str(queryFailedNote(err))
	}
	searcher := searcherVar.ToIDispatch()
	defer searcher.Release()

	resultVar, err := oleutil.CallMethod(searcher, "Search", wuaSearchCriteria)
	if err != nil {
		return posture, core.Str(queryFailedNote(err))
	}
	result := resultVar.ToIDispatch()
	defer result.Release()

	updatesVar, err := oleutil.GetProperty(result, "Updates")
	if err != nil {
		return posture, core.Str(queryFailedNote(err))
	}
	updates := updatesVar.ToIDispatch()
	defer updates.Release()

	count := int(dispInt64(updates, "Count"))

	catalog := make([]core.MissingUpdate, 0, count)
	for i := 0; i < count; i++ {
		itemVar, err := oleutil.GetProperty(updates, "Item", i)
		if err != nil {
			continue
		}
		item := itemVar.ToIDispatch()

		u := core.MissingUpdate{
			Title:          dispString(item, "Title"),
			Severity:       dispString(item, "MsrcSeverity"),
			Category:       firstCategoryName(item),
			RebootRequired: dispBool(item, "RebootRequired"),
			Downloaded:     dispBool(item, "IsDownloaded"),
			Installed:      dispBool(item, "IsInstalled"),
			SizeBytes:      dispInt64(item, "MaxDownloadSize"),
			LastChanged:    dispTime(item, "LastDeploymentChangeTime"),
		}
		u.KB = ExtractKB(dispStrings(item, "KBArticleIDs"), u.Title)

		item.Release()
		catalog = append(catalog, u)
	}

	catalog = prioritize.Annotate(catalog)
	total, critical, security := Summarize(catalog)

	posture.MissingTotal = core.Int(total)
	posture.MissingCritical = core.Int(critical)
	posture.MissingSecurity = core.Int(security)
	posture.SampleTitles = SampleTitles(catalog, sampleTitleMax)
	posture.Catalog = catalog
	return posture, nil
}

/* ----- best-effort VARIANT accessors ----- */

func dispString(d *ole.IDispatch, name string) string {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return ""
	}
	defer v.Clear()
	return v.ToString()
}

func dispBool(d *ole.IDispatch, name string) bool {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return false
	}
	defer v.Clear()
	b, _ := v.Value().(bool)
	return b
}

func dispInt64(d *ole.IDispatch, name string) int64 {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return 0
	}
	defer v.Clear()
	switch n := v.Value().(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return v.Val
	}
}

func dispTime(d *ole.IDispatch, name string) time.Time {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return time.Time{}
	}
	defer v.Clear()
	t, _ := v.Value().(time.Time)
	return t
}

// dispStrings walks a WUA string collection (Count/Item)
func dispStrings(d *ole.IDispatch, name string) []string {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return nil
	}
	coll := v.ToIDispatch()
	if coll == nil {
		return nil
	}
	defer coll.Release()

	n := int(dispInt64(coll, "Count"))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		iv, err := oleutil.GetProperty(coll, "Item", i)
		if err != nil {
			continue
		}
		out = append(out, iv.ToString())
		iv.Clear()
	}
	return out
}

// firstCategoryName picks Categories.Item(0).Name if present
func firstCategoryName(item *ole.IDispatch) string {
	v, err := oleutil.GetProperty(item, "Categories")
	if err != nil {
		return ""
	}
	cats := v.ToIDispatch()
	if cats == nil {
		return ""
	}
	defer cats.Release()

	if dispInt64(cats, "Count") == 0 {
		return ""
	}
	iv, err := oleutil.GetProperty(cats, "Item", 0)
	if err != nil {
		return ""
	}
	cat := iv.ToIDispatch()
	if cat == nil {
		return ""
	}
	defer cat.Release()
	return dispString(cat, "Name")
}
